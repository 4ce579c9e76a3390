package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"amberhall/models"
	"amberhall/utils"

	"go.uber.org/zap"
)

const resendAPI = "https://api.resend.com/emails"

// ResendMailer sends transactional email through the Resend HTTP API. With no
// API key configured it logs a mock send instead, which keeps local
// development working without credentials.
type ResendMailer struct {
	apiKey     string
	from       string
	adminEmail string
	client     *http.Client
}

// NewResendMailer creates a Mailer with a bounded request timeout.
func NewResendMailer(apiKey, from, adminEmail string) *ResendMailer {
	return &ResendMailer{
		apiKey:     apiKey,
		from:       from,
		adminEmail: adminEmail,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

func (m *ResendMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if m.apiKey == "" {
		utils.GetLogger().Info("mailer: no API key set, mock email send",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	payload := resendEmail{From: m.from, To: to, Subject: subject, Html: htmlBody}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email API error: %s", resp.Status)
	}
	return nil
}

// SendBookingReceived notifies the venue administrator about a new request.
func (m *ResendMailer) SendBookingReceived(ctx context.Context, booking *models.Booking) error {
	html := fmt.Sprintf(`
		<h2>New booking request</h2>
		<p><b>%s</b> requested <b>%s</b> on <b>%s</b> at %s for %d guests.</p>
		<p>Contact: %s / %s</p>
		<p>%s</p>`,
		booking.Name, booking.Package, booking.Date, booking.EventTime,
		booking.Guests, booking.Email, booking.Phone, booking.SpecialRequests)
	return m.send(ctx, m.adminEmail, "New booking request for "+booking.Date, html)
}

// SendPaymentLink emails the payer their payment link after approval.
func (m *ResendMailer) SendPaymentLink(ctx context.Context, booking *models.Booking, link string) error {
	html := fmt.Sprintf(`
		<h2>Your booking is approved 🎉</h2>
		<p>Hi %s, your booking for <b>%s</b> has been approved.</p>
		<p>Please complete the payment of ₹%.2f here: <a href="%s">%s</a></p>`,
		booking.Name, booking.Date, float64(booking.Amount)/100, link, link)
	return m.send(ctx, booking.Email, "Booking approved — complete your payment", html)
}

// SendRejection emails the requester that their booking was declined.
func (m *ResendMailer) SendRejection(ctx context.Context, to, name, date string) error {
	html := fmt.Sprintf(`
		<h2>Booking update</h2>
		<p>Hi %s, unfortunately we cannot host your event on <b>%s</b>.
		Please pick another date and submit a new request.</p>`, name, date)
	return m.send(ctx, to, "Booking request declined", html)
}

// SendAdminDigest emails the administrator a list of upcoming bookings.
func (m *ResendMailer) SendAdminDigest(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("<h2>Upcoming bookings</h2><ul>")
	for _, b := range bookings {
		fmt.Fprintf(&sb, "<li><b>%s</b> %s — %s, %d guests (%s)</li>",
			b.Date, b.EventTime, b.Name, b.Guests, b.Status)
	}
	sb.WriteString("</ul>")
	return m.send(ctx, m.adminEmail, "Upcoming bookings digest", sb.String())
}
