package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/images"
	"github.com/vkclicks/vkclicks-api/internal/middleware"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/storage"
)

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

// photographerForUser returns (nil, nil) when the user has no profile
// yet. Callers decide whether that means an empty list or a 404 — the
// profile is created lazily, absence is a normal outcome.
func photographerForUser(db *gorm.DB, userID uint) (*models.Photographer, error) {
	var photographer models.Photographer
	err := db.Where("user_id = ?", userID).First(&photographer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photographer, nil
}

// saveUpload runs an uploaded image through the processing pipeline
// and stores the webp result under prefix, returning its public URL.
func saveUpload(
	c *gin.Context,
	store storage.Storage,
	maxWidth int,
	quality int,
	prefix string,
	fh *multipart.FileHeader,
) (string, error) {

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	processed, err := images.Process(f, maxWidth, quality)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())
	return store.Save(c.Request.Context(), key, images.ContentType, bytes.NewReader(processed))
}
