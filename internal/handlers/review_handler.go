package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/cache"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/httpresp"
	"github.com/vkclicks/vkclicks-api/internal/infra/repository"
	"github.com/vkclicks/vkclicks-api/internal/models"
	ucReview "github.com/vkclicks/vkclicks-api/internal/usecase/review"
)

const reviewPageSize = 10

type ReviewHandler struct {
	db      *gorm.DB
	cache   *cache.SummaryCache
	upsert  *ucReview.UpsertReview
	summary *ucReview.GetSummary
}

func NewReviewHandler(db *gorm.DB, summaryCache *cache.SummaryCache) *ReviewHandler {
	repo := repository.NewReviewGormRepository(db)
	return &ReviewHandler{
		db:      db,
		cache:   summaryCache,
		upsert:  ucReview.NewUpsertReview(repo),
		summary: ucReview.NewGetSummary(repo),
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	BookingID   *uint  `json:"booking_id"`
}

type UpdateReviewRequest struct {
	ClientName *string `json:"client_name"`
	Rating     *int    `json:"rating"`
	Comment    *string `json:"comment"`
}

// --------- Handlers ---------

// List returns a photographer's reviews newest first. Without ?page= the
// full list comes back as a plain array; with it the payload is wrapped
// with paging metadata.
func (h *ReviewHandler) List(c *gin.Context) {
	photographerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		return
	}

	repo := repository.NewReviewGormRepository(h.db)
	ctx := c.Request.Context()

	if _, err := repo.GetPhotographer(ctx, uint(photographerID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		return
	}

	pageParam := c.Query("page")
	if pageParam == "" {
		reviews, err := repo.ListByPhotographer(ctx, uint(photographerID), 0, 0)
		if err != nil {
			httperr.Internal(c, "failed_to_load_reviews", "Could not load the reviews.")
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
		return
	}

	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}

	total, err := repo.CountByPhotographer(ctx, uint(photographerID))
	if err != nil {
		httperr.Internal(c, "failed_to_load_reviews", "Could not load the reviews.")
		return
	}

	offset := (page - 1) * reviewPageSize
	reviews, err := repo.ListByPhotographer(ctx, uint(photographerID), reviewPageSize, offset)
	if err != nil {
		httperr.Internal(c, "failed_to_load_reviews", "Could not load the reviews.")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"total_reviews": total,
		"page":          page,
		"has_next":      int64(offset+len(reviews)) < total,
		"has_previous":  page > 1,
	})
}

// Create is an upsert: a second submission from the same client email
// for the same photographer overwrites the first review.
func (h *ReviewHandler) Create(c *gin.Context) {
	photographerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid review data",
			"details": err.Error(),
		})
		return
	}

	review, created, err := h.upsert.Execute(c.Request.Context(), ucReview.UpsertReviewInput{
		PhotographerID: uint(photographerID),
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		Rating:         req.Rating,
		Comment:        req.Comment,
		BookingID:      req.BookingID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_rating"):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		case httperr.IsBusiness(err, "photographer_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		default:
			httperr.Internal(c, "failed_to_save_review", "Could not save the review.")
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), review.PhotographerID)

	status := http.StatusOK
	message := "Review updated successfully!"
	if created {
		status = http.StatusCreated
		message = "Review submitted successfully!"
	}

	c.JSON(status, gin.H{
		"message": message,
		"review":  review,
	})
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, ok := h.byPK(c)
	if !ok {
		return
	}
	httpresp.OK(c, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	review, ok := h.byPK(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	if req.ClientName != nil {
		review.ClientName = *req.ClientName
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := h.db.WithContext(c.Request.Context()).Save(review).Error; err != nil {
		httperr.Internal(c, "failed_to_update_review", "Could not update the review.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), review.PhotographerID)

	httpresp.OK(c, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	review, ok := h.byPK(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(review).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_review", "Could not delete the review.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), review.PhotographerID)

	c.Status(http.StatusNoContent)
}

// Summary serves the aggregate payload, cached per photographer while a
// Redis URL is configured.
func (h *ReviewHandler) Summary(c *gin.Context) {
	photographerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		return
	}

	ctx := c.Request.Context()

	var cached ucReview.Summary
	if h.cache.Get(ctx, uint(photographerID), &cached) {
		httpresp.OK(c, cached)
		return
	}

	summary, err := h.summary.Execute(ctx, uint(photographerID))
	if err != nil {
		if httperr.IsBusiness(err, "photographer_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load review summary: " + err.Error(),
		})
		return
	}

	h.cache.Set(ctx, uint(photographerID), summary)

	httpresp.OK(c, summary)
}

func (h *ReviewHandler) byPK(c *gin.Context) (*models.Review, bool) {
	pk, err := strconv.Atoi(c.Param("pk"))
	if err != nil {
		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}

	var review models.Review
	err = h.db.WithContext(c.Request.Context()).First(&review, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Not found")
		return nil, false
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_review", "Could not load the review.")
		return nil, false
	}

	return &review, true
}
