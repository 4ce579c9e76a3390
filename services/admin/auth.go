package admin

import (
	"context"
	"fmt"
	"time"

	adminRepo "amberhall/database/repository/admin"
	"amberhall/models"
	"amberhall/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued admin token stays valid.
const tokenTTL = 24 * time.Hour

// DefaultAdminService is the production AdminService.
type DefaultAdminService struct {
	Repo   adminRepo.AdminRepository
	Logger *zap.Logger
}

// Authenticate verifies the email/password pair and issues a signed token.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (string, *models.Admin, error) {
	adm, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if adm == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(adm.ID, adm.Email, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, adm, nil
}

// EnsureSeedAdmin creates the bootstrap admin account when the collection is
// empty. A blank seed password disables seeding.
func (s *DefaultAdminService) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	if password == "" {
		return nil
	}
	n, err := s.Repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	adm := &models.Admin{
		ID:           uuid.New().String(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(adm); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}
	s.Logger.Sugar().Infof("seeded admin account %s", email)
	return nil
}
