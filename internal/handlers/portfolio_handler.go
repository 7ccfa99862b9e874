package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/config"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/storage"
)

type PortfolioHandler struct {
	db     *gorm.DB
	store  storage.Storage
	config *config.Config
}

func NewPortfolioHandler(db *gorm.DB, store storage.Storage, cfg *config.Config) *PortfolioHandler {
	return &PortfolioHandler{db: db, store: store, config: cfg}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_portfolio", "Could not load the portfolio.")
		return
	}
	if photographer == nil {
		c.JSON(http.StatusOK, []models.PortfolioImage{})
		return
	}

	var portfolio []models.PortfolioImage
	if err := h.db.
		Where("photographer_id = ?", photographer.ID).
		Order("id ASC").
		Find(&portfolio).Error; err != nil {

		httperr.Internal(c, "failed_to_list_portfolio", "Could not load the portfolio.")
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}
	if photographer == nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "An image file is required.")
		return
	}

	url, err := saveUpload(c, h.store, h.config.UploadMaxWidth, h.config.UploadWebpQuality, "portfolio", fh)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The image could not be processed.")
		return
	}

	image := models.PortfolioImage{
		PhotographerID: photographer.ID,
		Image:          url,
		Caption:        c.PostForm("caption"),
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_create_image", "Could not save the image.")
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	image, ok := h.owned(c)
	if !ok {
		return
	}

	if caption, exists := c.GetPostForm("caption"); exists {
		image.Caption = caption
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := saveUpload(c, h.store, h.config.UploadMaxWidth, h.config.UploadWebpQuality, "portfolio", fh)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "The image could not be processed.")
			return
		}
		image.Image = url
	}

	if err := h.db.Save(image).Error; err != nil {
		httperr.Internal(c, "failed_to_update_image", "Could not update the image.")
		return
	}

	c.JSON(http.StatusOK, image)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	image, ok := h.owned(c)
	if !ok {
		return
	}

	if err := h.db.Delete(image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete the image.")
		return
	}

	c.Status(http.StatusNoContent)
}

// owned resolves the :id portfolio image scoped to the requesting
// photographer. Anything not owned reads as not found so the response
// never confirms another photographer's resources.
func (h *PortfolioHandler) owned(c *gin.Context) (*models.PortfolioImage, bool) {
	photographer, err := photographerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return nil, false
	}
	if photographer == nil {
		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	var image models.PortfolioImage
	if err := h.db.
		Where("id = ? AND photographer_id = ?", c.Param("id"), photographer.ID).
		First(&image).Error; err != nil {

		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	return &image, true
}
