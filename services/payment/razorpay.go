package payment

import (
	"context"
	"fmt"
	"time"

	"amberhall/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// gatewayTimeout bounds every outbound call to Razorpay.
const gatewayTimeout = 10 * time.Second

// RazorpayGateway implements PaymentGateway using Razorpay payment links.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway creates a PaymentGateway for the given API credentials.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateLink mints a payment link for the booking. Amount is in paise.
func (g *RazorpayGateway) CreateLink(ctx context.Context, booking *models.Booking, amount int64) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	data := map[string]interface{}{
		"amount":      amount,
		"currency":    "INR",
		"description": fmt.Sprintf("Venue booking for %s (%s)", booking.Date, booking.Package),
		"customer": map[string]interface{}{
			"name":    booking.Name,
			"email":   booking.Email,
			"contact": booking.Phone,
		},
		"notify": map[string]interface{}{
			"email": true,
			"sms":   true,
		},
		"notes": map[string]interface{}{
			"bookingId": booking.ID,
		},
	}

	type linkResult struct {
		body map[string]interface{}
		err  error
	}
	resCh := make(chan linkResult, 1)
	go func() {
		body, err := g.client.PaymentLink.Create(data, nil)
		resCh <- linkResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", "", fmt.Errorf("payment link creation timed out: %w", ctx.Err())
	case res := <-resCh:
		if res.err != nil {
			return "", "", fmt.Errorf("failed to create payment link: %w", res.err)
		}
		shortURL, _ := res.body["short_url"].(string)
		linkID, _ := res.body["id"].(string)
		if shortURL == "" {
			return "", "", fmt.Errorf("payment link response missing short_url")
		}
		return shortURL, linkID, nil
	}
}
