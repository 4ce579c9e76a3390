package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogRepo "amberhall/database/repository/catalog"
	"amberhall/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultPackageService is the production PackageService.
type DefaultPackageService struct {
	Repo catalogRepo.PackageRepository
}

func (s *DefaultPackageService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return s.Repo.GetAll()
}

func (s *DefaultPackageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, ErrNotFound
	}
	return pkg, nil
}

func (s *DefaultPackageService) CreatePackage(ctx context.Context, pkg models.Package, createdBy string) (*models.Package, error) {
	if err := validatePackage(&pkg); err != nil {
		return nil, err
	}
	pkg.ID = uuid.New().String()
	pkg.CreatedBy = createdBy
	if err := s.Repo.Create(&pkg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return &pkg, nil
}

func (s *DefaultPackageService) UpdatePackage(ctx context.Context, pkg models.Package) (*models.Package, error) {
	if pkg.ID == "" {
		return nil, ErrNotFound
	}
	if err := validatePackage(&pkg); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			// Renaming onto another package's name trips the same index.
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return &pkg, nil
}

func (s *DefaultPackageService) DeletePackage(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// validatePackage checks the package payload: a name, and a pricing shape
// consistent with the declared mode.
func validatePackage(pkg *models.Package) error {
	pkg.Name = strings.TrimSpace(pkg.Name)
	if pkg.Name == "" {
		return ErrInvalidPackage
	}
	switch pkg.PricingMode {
	case models.PricingFixed:
		if pkg.Price <= 0 {
			return ErrInvalidPackage
		}
	case models.PricingPerPerson:
		if pkg.Price <= 0 && len(pkg.PriceTiers) == 0 {
			return ErrInvalidPackage
		}
	case models.PricingCustom:
		// Custom pricing is quoted at approval time; nothing to check.
	default:
		return ErrInvalidPackage
	}
	return nil
}
