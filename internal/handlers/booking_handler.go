package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkclicks/vkclicks-api/internal/httperr"
	ucBooking "github.com/vkclicks/vkclicks-api/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
}

func NewBookingHandler(createUC *ucBooking.CreateBooking) *BookingHandler {
	return &BookingHandler{createUC: createUC}
}

// --------- Requests ---------

// Both snake_case and camelCase id keys are accepted; older frontend
// builds still send the camelCase form.
type CreateBookingRequest struct {
	PhotographerID    uint  `json:"photographer_id"`
	PhotographerIDAlt uint  `json:"photographerId"`
	PackageID         *uint `json:"package_id"`
	PackageIDAlt      *uint `json:"packageId"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"required"`

	EventDate       string `json:"event_date" binding:"required"`
	EventTime       string `json:"event_time" binding:"required"`
	EventLocation   string `json:"event_location" binding:"required"`
	EventType       string `json:"event_type"`
	SpecialRequests string `json:"special_requests"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking data",
			"details": err.Error(),
		})
		return
	}

	photographerID := req.PhotographerID
	if photographerID == 0 {
		photographerID = req.PhotographerIDAlt
	}
	if photographerID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photographer ID is required"})
		return
	}

	packageID := req.PackageID
	if packageID == nil {
		packageID = req.PackageIDAlt
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		PhotographerID:  photographerID,
		PackageID:       packageID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		EventDate:       req.EventDate,
		EventTime:       req.EventTime,
		EventLocation:   req.EventLocation,
		EventType:       req.EventType,
		SpecialRequests: req.SpecialRequests,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "photographer_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": "Photographer not found"})
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid booking data",
				"details": "event_date must be YYYY-MM-DD and event_time must be HH:MM",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to process booking: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking request submitted successfully!",
		"booking_id": booking.ID,
		"status":     booking.Status,
	})
}
