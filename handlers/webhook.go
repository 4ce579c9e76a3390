package handlers

import (
	"io"
	"net/http"

	"amberhall/services/booking"
	"amberhall/services/payment"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const signatureHeader = "X-Razorpay-Signature"

// WebhookHandler receives payment gateway callbacks.
type WebhookHandler struct {
	Svc    booking.BookingService
	Secret string
	Logger *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler instance.
func NewWebhookHandler(svc booking.BookingService, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Svc: svc, Secret: secret, Logger: logger}
}

// HandleRazorpayWebhook verifies the HMAC signature over the raw body, then
// processes payment.captured events. Unknown events and unknown booking ids
// are acknowledged with 200 so the gateway stops retrying.
func (h *WebhookHandler) HandleRazorpayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to read request body", "")
		return
	}

	signature := c.GetHeader(signatureHeader)
	if !payment.VerifyWebhookSignature(body, signature, h.Secret) {
		h.Logger.Warn("webhook signature verification failed", zap.String("remote", c.ClientIP()))
		utils.JSONError(c, http.StatusBadRequest, "Invalid webhook signature", "")
		return
	}

	event, err := payment.ParseWebhookEvent(body)
	if err != nil {
		h.Logger.Warn("malformed webhook payload", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	switch event.Event {
	case payment.EventPaymentCaptured:
		if err := h.Svc.ConfirmPayment(c.Request.Context(), event.BookingID, event.PaymentID); err != nil {
			h.Logger.Error("payment confirmation failed",
				zap.String("bookingId", event.BookingID),
				zap.String("paymentId", event.PaymentID),
				zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", "")
			return
		}
	case payment.EventPaymentFailed:
		if err := h.Svc.MarkPaymentFailed(c.Request.Context(), event.BookingID, event.PaymentID); err != nil {
			h.Logger.Error("payment failure recording failed",
				zap.String("bookingId", event.BookingID),
				zap.String("paymentId", event.PaymentID),
				zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment failure", "")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
