package handlers

import (
	"fmt"
	"net/http"

	"stayhub/middleware"
	"stayhub/services"
	"stayhub/services/receipt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	Service receipt.ReceiptService
	Logger  *zap.Logger
}

func NewReceiptHandler(svc receipt.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{Service: svc, Logger: logger}
}

// DownloadReceipt handles GET /api/bookings/download-receipt/:id. The PDF is
// rendered completely before any header is written.
func (h *ReceiptHandler) DownloadReceipt(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	r, err := h.Service.Render(c.Request.Context(), user, id)
	if err != nil {
		if services.KindOf(err) == services.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": services.MessageOf(err, "Booking not found")})
			return
		}
		h.Logger.Error("receipt generation failed", zap.String("booking", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error generating receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", r.Filename))
	c.Data(http.StatusOK, "application/pdf", r.Content)
}
