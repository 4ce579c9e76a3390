package catalog

import (
	"context"
	"fmt"

	catalogRepo "amberhall/database/repository/catalog"
	"amberhall/models"
)

// DefaultContactService is the production ContactService.
type DefaultContactService struct {
	Repo catalogRepo.ContactRepository
}

func (s *DefaultContactService) GetContact(ctx context.Context) (*models.Contact, error) {
	contact, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	return contact, nil
}

func (s *DefaultContactService) UpdateContact(ctx context.Context, contact models.Contact, updatedBy string) (*models.Contact, error) {
	contact.UpdatedBy = updatedBy
	if err := s.Repo.Upsert(&contact); err != nil {
		return nil, fmt.Errorf("failed to update contact record: %w", err)
	}
	return &contact, nil
}
