package admin

import (
	"context"
	"fmt"
	"strings"

	"amberhall/models"

	"golang.org/x/crypto/bcrypt"
)

// UpdateCredentials applies an explicit credentials change. When a new
// password is supplied it is hashed unconditionally; changing only the name
// or email never re-hashes or clears the stored password.
func (s *DefaultAdminService) UpdateCredentials(ctx context.Context, id string, update CredentialsUpdate) (*models.Admin, error) {
	adm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	if adm == nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		adm.Name = name
	}
	if email := strings.TrimSpace(update.Email); email != "" {
		adm.Email = email
	}
	if update.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		adm.PasswordHash = string(hash)
	}

	if err := s.Repo.Update(adm); err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return adm, nil
}
