package handlers

import (
	"io"
	"net/http"

	"stayhub/middleware"
	"stayhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// GetUserData handles GET /api/user.
func (h *UserHandler) GetUserData(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"role":                 u.Role,
		"recentSearchedCities": u.RecentSearchedCities,
	})
}

// StoreRecentSearch handles POST /api/user/store-recent-search.
func (h *UserHandler) StoreRecentSearch(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req struct {
		City string `json:"recentSearchedCity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "recentSearchedCity is required")
		return
	}

	cities, err := h.Service.StoreRecentSearch(c.Request.Context(), u, req.City)
	if err != nil {
		fail(c, h.Logger, err, "Failed to store recent search")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "City added", "recentSearchedCities": cities})
}

// UpdateFCMToken handles PUT /api/user/fcm-token.
func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req struct {
		Token string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "fcmToken is required")
		return
	}

	if err := h.Service.UpdateFCMToken(c.Request.Context(), u.ID, req.Token); err != nil {
		fail(c, h.Logger, err, "Failed to update FCM token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "FCM token updated"})
}

// ClerkWebhook handles POST /api/clerk.
func (h *UserHandler) ClerkWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unreadable body"})
		return
	}

	evt, err := h.Service.ParseClerkWebhook(payload, c.Request.Header)
	if err != nil {
		h.Logger.Warn("clerk webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid webhook"})
		return
	}
	if err := h.Service.ApplyClerkEvent(c.Request.Context(), evt); err != nil {
		h.Logger.Error("clerk webhook processing failed", zap.String("type", evt.Type), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Webhook received"})
}
