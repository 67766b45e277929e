package handlers

import (
	"io"
	"net/http"

	"stayhub/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// StripePayment handles POST /api/bookings/stripe-payment.
func (h *PaymentHandler) StripePayment(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "bookingId is required")
		return
	}

	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), req.BookingID, c.GetHeader("Origin"))
	if err != nil {
		fail(c, h.Logger, err, "Payment Failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// StripeWebhook handles POST /api/stripe. Once the signature checks out the
// event is always acknowledged so Stripe does not redeliver it.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook Error: unreadable body"})
		return
	}

	evt, err := h.Service.ParseEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.Logger.Warn("stripe webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook Error: invalid signature"})
		return
	}

	if err := h.Service.HandleEvent(c.Request.Context(), evt); err != nil {
		h.Logger.Error("stripe webhook processing failed",
			zap.String("event", evt.ID),
			zap.String("type", evt.RawType),
			zap.Error(err),
		)
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
