package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

type TeamHandler struct {
	db *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

// --------- Requests ---------

type CreateTeamMemberRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

type UpdateTeamMemberRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// --------- Handlers ---------

func (h *TeamHandler) List(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_team", "Could not load the team.")
		return
	}
	if photographer == nil {
		c.JSON(http.StatusOK, []models.PhotographerTeam{})
		return
	}

	var team []models.PhotographerTeam
	if err := h.db.
		Where("photographer_id = ?", photographer.ID).
		Order("id ASC").
		Find(&team).Error; err != nil {

		httperr.Internal(c, "failed_to_list_team", "Could not load the team.")
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}
	if photographer == nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found")
		return
	}

	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	member := models.PhotographerTeam{
		PhotographerID: photographer.ID,
		Name:           req.Name,
		Role:           req.Role,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_team_member", "Could not save the team member.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	member, ok := h.owned(c)
	if !ok {
		return
	}

	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}

	if err := h.db.Save(member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_team_member", "Could not update the team member.")
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	member, ok := h.owned(c)
	if !ok {
		return
	}

	if err := h.db.Delete(member).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_team_member", "Could not delete the team member.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) owned(c *gin.Context) (*models.PhotographerTeam, bool) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return nil, false
	}
	if photographer == nil {
		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	var member models.PhotographerTeam
	if err := h.db.
		Where("id = ? AND photographer_id = ?", c.Param("id"), photographer.ID).
		First(&member).Error; err != nil {

		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	return &member, true
}
