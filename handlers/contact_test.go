package handlers

import (
	"context"
	"net/http"
	"testing"

	"amberhall/models"
	"amberhall/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeContactService stubs catalog.ContactService.
type fakeContactService struct {
	getFn    func(ctx context.Context) (*models.Contact, error)
	updateFn func(ctx context.Context, contact models.Contact, updatedBy string) (*models.Contact, error)
}

func (f *fakeContactService) GetContact(ctx context.Context) (*models.Contact, error) {
	return f.getFn(ctx)
}
func (f *fakeContactService) UpdateContact(ctx context.Context, contact models.Contact, updatedBy string) (*models.Contact, error) {
	return f.updateFn(ctx, contact, updatedBy)
}

func newContactRouter(svc catalog.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/contact", h.GetContact)
	r.PUT("/api/admin/contact", h.UpdateContact)
	return r
}

func TestGetContact(t *testing.T) {
	svc := &fakeContactService{
		getFn: func(ctx context.Context) (*models.Contact, error) {
			return &models.Contact{Phone: "+91 98765 43210", Email: "hello@example.com"}, nil
		},
	}

	w := doJSON(t, newContactRouter(svc), http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello@example.com")
}

func TestGetContactNotSetYet(t *testing.T) {
	// Before the admin first saves contact details, the record is absent and
	// the endpoint reports not-found rather than a server error.
	svc := &fakeContactService{
		getFn: func(ctx context.Context) (*models.Contact, error) {
			return nil, catalog.ErrNotFound
		},
	}

	w := doJSON(t, newContactRouter(svc), http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetContactStorageFailure(t *testing.T) {
	svc := &fakeContactService{
		getFn: func(ctx context.Context) (*models.Contact, error) {
			return nil, assert.AnError
		},
	}

	w := doJSON(t, newContactRouter(svc), http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateContact(t *testing.T) {
	svc := &fakeContactService{
		updateFn: func(ctx context.Context, contact models.Contact, updatedBy string) (*models.Contact, error) {
			return &contact, nil
		},
	}

	w := doJSON(t, newContactRouter(svc), http.MethodPut, "/api/admin/contact",
		map[string]any{"phone": "+91 11111 22222"})
	assert.Equal(t, http.StatusOK, w.Code)
}
