package handlers

import (
	"net/http"

	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services/hotel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HotelHandler struct {
	Service hotel.HotelService
	Logger  *zap.Logger
}

func NewHotelHandler(svc hotel.HotelService, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{Service: svc, Logger: logger}
}

// RegisterHotel handles POST /api/hotels.
func (h *HotelHandler) RegisterHotel(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req models.HotelRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "name, address, contact and city are required")
		return
	}

	created, err := h.Service.RegisterHotel(c.Request.Context(), u, req)
	if err != nil {
		fail(c, h.Logger, err, "Failed to register hotel")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hotel Registered Successfully", "hotel": created})
}
