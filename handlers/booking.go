package handlers

import (
	"net/http"

	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CheckAvailability handles POST /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "room, checkInDate and checkOutDate are required")
		return
	}

	ok, err := h.Service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "isAvailable": ok})
}

// CreateBooking handles POST /api/bookings/book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "room, checkInDate and checkOutDate are required")
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), user, req)
	if err != nil {
		fail(c, h.Logger, err, "Failed to create Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking created successfully", "booking": b})
}

// UserBookings handles GET /api/bookings/user.
func (h *BookingHandler) UserBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.Service.UserBookings(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, h.Logger, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// HotelBookings handles GET /api/bookings/hotel.
func (h *BookingHandler) HotelBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	dashboard, err := h.Service.OwnerDashboard(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, h.Logger, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dashboardData": dashboard})
}
