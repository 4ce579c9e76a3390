package admin

import (
	"context"

	"amberhall/models"
)

// CredentialsUpdate carries an explicit credentials change. A non-empty
// NewPassword is always re-hashed; name and email changes never touch the
// stored hash.
type CredentialsUpdate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// AdminService owns administrator authentication and credential management.
type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (token string, admin *models.Admin, err error)
	UpdateCredentials(ctx context.Context, id string, update CredentialsUpdate) (*models.Admin, error)
	EnsureSeedAdmin(ctx context.Context, email, password string) error
}
