package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/dto"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

// PublicHandler serves the unauthenticated browse endpoints.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

func (h *PublicHandler) ListPhotographers(c *gin.Context) {
	var photographers []models.Photographer
	if err := h.db.Preload("User").Order("id ASC").Find(&photographers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_photographers", "Could not load photographers.")
		return
	}

	var team []models.PhotographerTeam
	h.db.Order("id ASC").Find(&team)
	teamByPhotographer := make(map[uint][]dto.TeamMemberDTO)
	for _, m := range team {
		teamByPhotographer[m.PhotographerID] = append(teamByPhotographer[m.PhotographerID], dto.TeamMemberDTO{
			ID:   m.ID,
			Name: m.Name,
			Role: m.Role,
		})
	}

	var packages []models.PhotographyPackage
	h.db.Order("id ASC").Find(&packages)
	packagesByPhotographer := make(map[uint][]dto.PackageSummaryDTO)
	for _, p := range packages {
		packagesByPhotographer[p.PhotographerID] = append(packagesByPhotographer[p.PhotographerID], dto.PackageSummaryDTO{
			ID:          p.ID,
			Name:        p.Name,
			EventType:   p.EventType,
			Price:       p.Price.StringFixed(2),
			Description: p.Description,
		})
	}

	type ratingRow struct {
		PhotographerID uint
		Average        float64
		Total          int64
	}
	var ratings []ratingRow
	h.db.Model(&models.Review{}).
		Select("photographer_id, AVG(rating) AS average, COUNT(*) AS total").
		Group("photographer_id").
		Scan(&ratings)
	ratingByPhotographer := make(map[uint]ratingRow, len(ratings))
	for _, r := range ratings {
		ratingByPhotographer[r.PhotographerID] = r
	}

	out := make([]dto.PhotographerListDTO, 0, len(photographers))
	for _, p := range photographers {
		item := dto.PhotographerListDTO{
			ID:                p.ID,
			User:              dto.UserRefDTO{Username: p.User.Username},
			PhoneNumber:       p.PhoneNumber,
			Location:          p.Location,
			Bio:               p.Bio,
			TypeOfPhotography: p.TypeOfPhotography,
			ProfilePicture:    p.ProfilePicture,
			CreatedAt:         p.CreatedAt,
			Team:              teamByPhotographer[p.ID],
			Packages:          packagesByPhotographer[p.ID],
		}
		if item.Team == nil {
			item.Team = []dto.TeamMemberDTO{}
		}
		if item.Packages == nil {
			item.Packages = []dto.PackageSummaryDTO{}
		}
		if r, ok := ratingByPhotographer[p.ID]; ok {
			item.AverageRating = math.Round(r.Average*10) / 10
			item.TotalReviews = r.Total
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) GetPhotographer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_photographer_id", "Invalid photographer id.")
		return
	}

	var photographer models.Photographer
	if err := h.db.Preload("User").First(&photographer, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		return
	}

	var team []models.PhotographerTeam
	h.db.Where("photographer_id = ?", photographer.ID).Order("id ASC").Find(&team)

	teamOut := make([]dto.TeamMemberDTO, 0, len(team))
	for _, m := range team {
		teamOut = append(teamOut, dto.TeamMemberDTO{ID: m.ID, Name: m.Name, Role: m.Role})
	}

	var packages []models.PhotographyPackage
	h.db.Where("photographer_id = ?", photographer.ID).Order("id ASC").Find(&packages)

	packagesOut := make([]dto.PackageDetailDTO, 0, len(packages))
	for _, p := range packages {
		packagesOut = append(packagesOut, dto.PackageDetailDTO{
			PackageSummaryDTO: dto.PackageSummaryDTO{
				ID:          p.ID,
				Name:        p.Name,
				EventType:   p.EventType,
				Price:       p.Price.StringFixed(2),
				Description: p.Description,
			},
			Duration:     p.Duration,
			DeliveryTime: p.DeliveryTime,
			Includes:     p.Includes,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  photographer.ID,
		"phone_number":        photographer.PhoneNumber,
		"location":            photographer.Location,
		"bio":                 photographer.Bio,
		"type_of_photography": photographer.TypeOfPhotography,
		"profile_picture":     photographer.ProfilePicture,
		"created_at":          photographer.CreatedAt,
		"user": gin.H{
			"username": photographer.User.Username,
			"email":    photographer.User.Email,
		},
		"team":     teamOut,
		"packages": packagesOut,
	})
}

func (h *PublicHandler) ListPortfolio(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_photographer_id", "Invalid photographer id.")
		return
	}

	var photographer models.Photographer
	if err := h.db.First(&photographer, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
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
