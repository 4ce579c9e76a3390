package payment

import (
	"encoding/json"

	razorpayUtils "github.com/razorpay/razorpay-go/utils"
)

// Razorpay webhook events applied to bookings.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// VerifyWebhookSignature checks the HMAC-SHA256 signature header against the
// exact raw request body. It must run before the payload is even parsed.
func VerifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	return razorpayUtils.VerifyWebhookSignature(string(rawBody), signature, secret)
}

// WebhookEvent is the subset of the Razorpay webhook payload the booking
// lifecycle needs: the event type, the provider payment id, and the booking
// id correlated through the payment-link notes.
type WebhookEvent struct {
	Event     string
	PaymentID string
	BookingID string
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID    string            `json:"id"`
				Notes map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhookEvent extracts the fields of interest from a raw webhook body.
func ParseWebhookEvent(rawBody []byte) (*WebhookEvent, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return nil, err
	}
	return &WebhookEvent{
		Event:     env.Event,
		PaymentID: env.Payload.Payment.Entity.ID,
		BookingID: env.Payload.Payment.Entity.Notes["bookingId"],
	}, nil
}
