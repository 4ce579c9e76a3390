package handlers

import (
	"errors"
	"net/http"

	"amberhall/models"
	"amberhall/services/booking"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking intake and the admin lifecycle
// endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetBookedDates returns the sorted list of booked days. Public.
func (h *BookingHandler) GetBookedDates(c *gin.Context) {
	dates, err := h.Svc.BookedDates(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list booked dates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booked dates", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookedDates": dates})
}

// SubmitBooking admits a public booking request. Public.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, dates, err := h.Svc.SubmitBooking(c.Request.Context(), input)
	if err != nil {
		var vErr *booking.ValidationError
		switch {
		case errors.Is(err, booking.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "Invalid or missing event date", "")
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Error(), "")
		case errors.Is(err, booking.ErrDateBooked):
			utils.JSONError(c, http.StatusConflict, "This date is already booked", "")
		default:
			h.Logger.Error("booking submission failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to submit booking", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking request received",
		"booking":     created,
		"bookedDates": dates,
	})
}

// ListBookings runs the retention sweep, then returns the current booking
// list. Admin only.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ApproveBooking approves a pending booking and returns the payment link.
// Admin only.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, link, err := h.Svc.Approve(c.Request.Context(), id, input.Amount)
	if err != nil {
		var gwErr *booking.GatewayError
		switch {
		case errors.Is(err, booking.ErrInvalidAmount):
			utils.JSONError(c, http.StatusBadRequest, "Amount must be a positive number", "")
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.As(err, &gwErr):
			// Approval is already persisted at this point; only the link failed.
			h.Logger.Error("payment link creation failed", zap.String("bookingId", id), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Booking approved but payment link creation failed", "")
		default:
			h.Logger.Error("booking approval failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to approve booking", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Booking approved",
		"booking":     updated,
		"paymentLink": link,
	})
}

// RejectBooking deletes the booking and notifies the requester. Admin only.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Reject(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("booking rejection failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reject booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking rejected", "bookingId": id})
}

// DeleteBooking removes a booking without rejection side effects. Admin only.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("booking deletion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted", "bookingId": id})
}
