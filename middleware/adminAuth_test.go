package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amberhall/config"
	"amberhall/models"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminRepo resolves a single known admin account.
type fakeAdminRepo struct {
	admin *models.Admin
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error { return nil }
func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	if r.admin != nil && r.admin.ID == id {
		return r.admin, nil
	}
	return nil, nil
}
func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	if r.admin != nil && r.admin.Email == email {
		return r.admin, nil
	}
	return nil, nil
}
func (r *fakeAdminRepo) Update(admin *models.Admin) error { return nil }
func (r *fakeAdminRepo) Count() (int64, error)            { return 1, nil }

func newAuthTestRouter(repo *fakeAdminRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AdminAuthMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"adminID":    c.GetString("adminID"),
			"adminEmail": c.GetString("adminEmail"),
		})
	})
	return r
}

func getProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-secret"
	repo := &fakeAdminRepo{admin: &models.Admin{ID: "adm-1", Email: "owner@example.com"}}
	r := newAuthTestRouter(repo)

	token, err := utils.GenerateToken("adm-1", "owner@example.com", time.Hour)
	require.NoError(t, err)

	w := getProtected(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminID":"adm-1"`)
	assert.Contains(t, w.Body.String(), `"adminEmail":"owner@example.com"`)
}

func TestAdminAuthMiddlewareMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-secret"
	r := newAuthTestRouter(&fakeAdminRepo{})

	t.Run("absent", func(t *testing.T) {
		w := getProtected(r, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
	t.Run("not bearer", func(t *testing.T) {
		w := getProtected(r, "Basic abc123")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminAuthMiddlewareInvalidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-secret"
	repo := &fakeAdminRepo{admin: &models.Admin{ID: "adm-1", Email: "owner@example.com"}}
	r := newAuthTestRouter(repo)

	t.Run("garbage token", func(t *testing.T) {
		w := getProtected(r, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateToken("adm-1", "owner@example.com", -time.Minute)
		require.NoError(t, err)
		w := getProtected(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		config.AppConfig.JWTSecret = "other-secret"
		token, err := utils.GenerateToken("adm-1", "owner@example.com", time.Hour)
		require.NoError(t, err)
		config.AppConfig.JWTSecret = "test-signing-secret"

		w := getProtected(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted admin account", func(t *testing.T) {
		token, err := utils.GenerateToken("adm-gone", "ghost@example.com", time.Hour)
		require.NoError(t, err)
		w := getProtected(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
