package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

const capturedPayload = `{
  "event": "payment.captured",
  "payload": {
    "payment": {
      "entity": {
        "id": "pay_abc123",
        "notes": {"bookingId": "bkg-42"}
      }
    }
  }
}`

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(capturedPayload)
	secret := "whsec_test"

	assert.True(t, VerifyWebhookSignature(body, signBody(body, secret), secret))
}

func TestVerifyWebhookSignatureRejectsMismatch(t *testing.T) {
	body := []byte(capturedPayload)

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(body, signBody(body, "other-secret"), "whsec_test"))
	})
	t.Run("tampered body", func(t *testing.T) {
		sig := signBody(body, "whsec_test")
		tampered := append([]byte(nil), body...)
		tampered[0] = ' '
		assert.False(t, VerifyWebhookSignature(tampered, sig, "whsec_test"))
	})
	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(body, "", "whsec_test"))
	})
	t.Run("empty secret", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(body, signBody(body, "whsec_test"), ""))
	})
}

func TestParseWebhookEvent(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(capturedPayload))
	require.NoError(t, err)

	assert.Equal(t, EventPaymentCaptured, event.Event)
	assert.Equal(t, "pay_abc123", event.PaymentID)
	assert.Equal(t, "bkg-42", event.BookingID)
}

func TestParseWebhookEventWithoutBookingCorrelation(t *testing.T) {
	body := []byte(`{
	  "event": "payment.captured",
	  "payload": {"payment": {"entity": {"id": "pay_nocorr", "notes": {}}}}
	}`)

	event, err := ParseWebhookEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "pay_nocorr", event.PaymentID)
	assert.Empty(t, event.BookingID)
}

func TestParseWebhookEventMalformed(t *testing.T) {
	_, err := ParseWebhookEvent([]byte("not json"))
	assert.Error(t, err)
}
