package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const webhookSecret = "whsec_test"

func signWebhookBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookRouter(svc *fakeBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(svc, webhookSecret, zap.NewNop())

	r := gin.New()
	r.POST("/api/razorpay/webhook", h.HandleRazorpayWebhook)
	return r
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookPaymentCaptured(t *testing.T) {
	var gotBooking, gotPayment string
	svc := &fakeBookingService{
		confirmFn: func(ctx context.Context, bookingID, paymentID string) error {
			gotBooking, gotPayment = bookingID, paymentID
			return nil
		},
	}

	body := []byte(`{
	  "event": "payment.captured",
	  "payload": {"payment": {"entity": {"id": "pay_abc123", "notes": {"bookingId": "bkg-42"}}}}
	}`)

	w := postWebhook(newWebhookRouter(svc), body, signWebhookBody(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Equal(t, "bkg-42", gotBooking)
	assert.Equal(t, "pay_abc123", gotPayment)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	svc := &fakeBookingService{
		confirmFn: func(ctx context.Context, bookingID, paymentID string) error {
			t.Fatal("ConfirmPayment must not run before signature verification")
			return nil
		},
	}
	r := newWebhookRouter(svc)

	body := []byte(`{"event": "payment.captured"}`)

	t.Run("missing header", func(t *testing.T) {
		w := postWebhook(r, body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("wrong signature", func(t *testing.T) {
		w := postWebhook(r, body, "deadbeef")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("signature for different body", func(t *testing.T) {
		w := postWebhook(r, body, signWebhookBody([]byte(`{"event":"other"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWebhookPaymentFailed(t *testing.T) {
	var gotBooking, gotPayment string
	svc := &fakeBookingService{
		failedFn: func(ctx context.Context, bookingID, paymentID string) error {
			gotBooking, gotPayment = bookingID, paymentID
			return nil
		},
	}

	body := []byte(`{
	  "event": "payment.failed",
	  "payload": {"payment": {"entity": {"id": "pay_failed1", "notes": {"bookingId": "bkg-42"}}}}
	}`)

	w := postWebhook(newWebhookRouter(svc), body, signWebhookBody(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bkg-42", gotBooking)
	assert.Equal(t, "pay_failed1", gotPayment)
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	svc := &fakeBookingService{
		confirmFn: func(ctx context.Context, bookingID, paymentID string) error {
			t.Fatal("only payment.captured should confirm payments")
			return nil
		},
		failedFn: func(ctx context.Context, bookingID, paymentID string) error {
			t.Fatal("only payment.failed should record failures")
			return nil
		},
	}

	body := []byte(`{
	  "event": "payment.authorized",
	  "payload": {"payment": {"entity": {"id": "pay_x", "notes": {"bookingId": "bkg-42"}}}}
	}`)

	w := postWebhook(newWebhookRouter(svc), body, signWebhookBody(body))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookAcknowledgesEventWithoutCorrelation(t *testing.T) {
	var gotBooking string
	svc := &fakeBookingService{
		confirmFn: func(ctx context.Context, bookingID, paymentID string) error {
			gotBooking = bookingID
			return nil
		},
	}

	body := []byte(`{
	  "event": "payment.captured",
	  "payload": {"payment": {"entity": {"id": "pay_x", "notes": {}}}}
	}`)

	w := postWebhook(newWebhookRouter(svc), body, signWebhookBody(body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotBooking)
}
