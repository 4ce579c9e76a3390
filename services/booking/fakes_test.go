package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"amberhall/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository with the same uniqueness
// behavior as the Mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	byID     map[string]*models.Booking
	failWith error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[string]*models.Booking{}}
}

// duplicateKeyErr mimics the server-side unique index violation.
func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.byID {
		if existing.Date == b.Date {
			return duplicateKeyErr()
		}
	}
	clone := *b
	clone.CreatedAt = time.Now()
	r.byID[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetByDate(day string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byID {
		if b.Date == day {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeBookingRepo) ListDates() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dates := []string{}
	for _, b := range r.byID {
		dates = append(dates, b.Date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *fakeBookingRepo) ListBetween(fromDay, toDay string) ([]models.Booking, error) {
	all, _ := r.ListAll()
	out := []models.Booking{}
	for _, b := range all {
		if b.Date >= fromDay && b.Date <= toDay {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SetApproved(id string, amount int64, at time.Time) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	b.Status = models.BookingStatusApproved
	b.Amount = amount
	b.ApprovedAt = &at
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) SetPaymentLink(id, linkID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.RazorpayOrderID = linkID
	return nil
}

func (r *fakeBookingRepo) SetPaid(id, paymentID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok || b.IsPaid {
		return false, nil
	}
	b.IsPaid = true
	b.PaymentStatus = models.PaymentStatusPaid
	b.RazorpayPaymentID = paymentID
	b.PaidAt = &at
	return true, nil
}

func (r *fakeBookingRepo) SetPaymentFailed(id, paymentID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok || b.IsPaid {
		return false, nil
	}
	b.PaymentStatus = models.PaymentStatusFailed
	b.RazorpayPaymentID = paymentID
	return true, nil
}

func (r *fakeBookingRepo) DeleteByID(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *fakeBookingRepo) DeleteBefore(day string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, b := range r.byID {
		if b.Date < day {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

// fakeMailer records every send.
type fakeMailer struct {
	mu         sync.Mutex
	received   []string
	links      []string
	rejections []string
	digests    int
}

func (m *fakeMailer) SendBookingReceived(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, b.ID)
	return nil
}

func (m *fakeMailer) SendPaymentLink(ctx context.Context, b *models.Booking, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, link)
	return nil
}

func (m *fakeMailer) SendRejection(ctx context.Context, to, name, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections = append(m.rejections, to)
	return nil
}

func (m *fakeMailer) SendAdminDigest(ctx context.Context, bookings []models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.digests++
	return nil
}

func (m *fakeMailer) rejectionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rejections)
}

func (m *fakeMailer) linkCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.links)
}

// fakeBroadcaster records published events.
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []models.BroadcastEvent
}

func (b *fakeBroadcaster) Publish(ctx context.Context, event models.BroadcastEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *fakeBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeGateway returns a canned link or a canned error.
type fakeGateway struct {
	url    string
	linkID string
	err    error
	calls  int
}

func (g *fakeGateway) CreateLink(ctx context.Context, b *models.Booking, amount int64) (string, string, error) {
	g.calls++
	if g.err != nil {
		return "", "", g.err
	}
	return g.url, g.linkID, nil
}

func newTestService(repo *fakeBookingRepo, gw *fakeGateway, mailer *fakeMailer, bc *fakeBroadcaster) *DefaultBookingService {
	return NewDefaultBookingService(repo, gw, mailer, bc, zap.NewNop())
}

func validInput(date string) models.BookingInput {
	return models.BookingInput{
		Name:    "Asha Nair",
		Email:   "asha@example.com",
		Phone:   "+91 98765 43210",
		Package: "Gold",
		Guests:  150,
		Date:    date,
		Time:    "18:00",
	}
}
