package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/config"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/middleware"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/storage"
)

type ProfileHandler struct {
	db     *gorm.DB
	store  storage.Storage
	config *config.Config
}

func NewProfileHandler(db *gorm.DB, store storage.Storage, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{db: db, store: store, config: cfg}
}

// --------- Requests ---------

type SaveProfileRequest struct {
	PhoneNumber       string `form:"phone_number" json:"phone_number" binding:"required"`
	Location          string `form:"location" json:"location"`
	Bio               string `form:"bio" json:"bio"`
	TypeOfPhotography string `form:"type_of_photography" json:"type_of_photography"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}

	// A row with nothing filled in counts as "no profile yet" for the
	// frontend onboarding flow.
	if photographer == nil ||
		(photographer.Bio == "" && photographer.Location == "" &&
			photographer.TypeOfPhotography == "" && photographer.ProfilePicture == "") {
		c.JSON(http.StatusOK, gin.H{"profile_exists": false})
		return
	}

	var team []models.PhotographerTeam
	h.db.Where("photographer_id = ?", photographer.ID).Order("id ASC").Find(&team)

	var packages []models.PhotographyPackage
	h.db.Where("photographer_id = ?", photographer.ID).Order("id ASC").Find(&packages)

	c.JSON(http.StatusOK, h.profileResponse(c, photographer, gin.H{
		"team":     team,
		"packages": packages,
	}))
}

func (h *ProfileHandler) Save(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	userID := currentUserID(c)

	photographer, err := photographerForUser(h.db, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}

	// Lazy creation: the Photographer row materializes on the first
	// profile save, not at signup.
	if photographer == nil {
		photographer = &models.Photographer{UserID: userID}
	}

	photographer.PhoneNumber = req.PhoneNumber
	photographer.Location = req.Location
	photographer.Bio = req.Bio
	photographer.TypeOfPhotography = req.TypeOfPhotography

	if fh, err := c.FormFile("profile_picture"); err == nil {
		url, err := saveUpload(c, h.store, h.config.UploadMaxWidth, h.config.UploadWebpQuality, "profile_pics", fh)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "The profile picture could not be processed.")
			return
		}
		photographer.ProfilePicture = url
	}

	if err := h.db.Save(photographer).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Could not save the profile.")
		return
	}

	c.JSON(http.StatusOK, h.profileResponse(c, photographer, nil))
}

func (h *ProfileHandler) profileResponse(c *gin.Context, p *models.Photographer, extra gin.H) gin.H {
	username, _ := c.Get(middleware.ContextUsername)
	email, _ := c.Get(middleware.ContextUserEmail)

	resp := gin.H{
		"id":                  p.ID,
		"phone_number":        p.PhoneNumber,
		"location":            p.Location,
		"bio":                 p.Bio,
		"type_of_photography": p.TypeOfPhotography,
		"profile_picture":     p.ProfilePicture,
		"created_at":          p.CreatedAt,
		"user": gin.H{
			"username": username,
			"email":    email,
		},
	}
	for k, v := range extra {
		resp[k] = v
	}
	return resp
}
