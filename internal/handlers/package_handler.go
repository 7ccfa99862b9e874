package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

type PackageHandler struct {
	db *gorm.DB
}

func NewPackageHandler(db *gorm.DB) *PackageHandler {
	return &PackageHandler{db: db}
}

// --------- Requests ---------

type CreatePackageRequest struct {
	Name         string          `json:"name" binding:"required"`
	EventType    string          `json:"event_type"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Description  string          `json:"description"`
	Duration     int             `json:"duration"`
	DeliveryTime int             `json:"delivery_time"`
	Includes     string          `json:"includes"`
}

type UpdatePackageRequest struct {
	Name         *string          `json:"name,omitempty"`
	EventType    *string          `json:"event_type,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Duration     *int             `json:"duration,omitempty"`
	DeliveryTime *int             `json:"delivery_time,omitempty"`
	Includes     *string          `json:"includes,omitempty"`
}

// --------- Handlers ---------

func (h *PackageHandler) List(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_packages", "Could not load the packages.")
		return
	}
	if photographer == nil {
		c.JSON(http.StatusOK, []models.PhotographyPackage{})
		return
	}

	var packages []models.PhotographyPackage
	if err := h.db.
		Where("photographer_id = ?", photographer.ID).
		Order("id ASC").
		Find(&packages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_packages", "Could not load the packages.")
		return
	}

	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) Create(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}
	if photographer == nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found")
		return
	}

	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Duration <= 0 {
		req.Duration = 1
	}
	if req.DeliveryTime <= 0 {
		req.DeliveryTime = 7
	}

	pkg := models.PhotographyPackage{
		PhotographerID: photographer.ID,
		Name:           req.Name,
		EventType:      req.EventType,
		Price:          req.Price,
		Description:    req.Description,
		Duration:       req.Duration,
		DeliveryTime:   req.DeliveryTime,
		Includes:       req.Includes,
	}

	if err := h.db.Create(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_package", "Could not save the package.")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	pkg, ok := h.owned(c)
	if !ok {
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.EventType != nil {
		pkg.EventType = *req.EventType
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.DeliveryTime != nil {
		pkg.DeliveryTime = *req.DeliveryTime
	}
	if req.Includes != nil {
		pkg.Includes = *req.Includes
	}

	if err := h.db.Save(pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_package", "Could not update the package.")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	pkg, ok := h.owned(c)
	if !ok {
		return
	}

	if err := h.db.Delete(pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_package", "Could not delete the package.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PackageHandler) owned(c *gin.Context) (*models.PhotographyPackage, bool) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return nil, false
	}
	if photographer == nil {
		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	var pkg models.PhotographyPackage
	if err := h.db.
		Where("id = ? AND photographer_id = ?", c.Param("id"), photographer.ID).
		First(&pkg).Error; err != nil {

		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	return &pkg, true
}
