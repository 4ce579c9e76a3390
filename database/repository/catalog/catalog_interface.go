package catalogRepo

import "amberhall/models"

// PackageRepository defines data access for service packages.
type PackageRepository interface {
	Create(pkg *models.Package) error
	GetByID(id string) (*models.Package, error)
	GetAll() ([]models.Package, error)
	Update(pkg *models.Package) error
	Delete(id string) (bool, error)
}

// ContactRepository stores the venue's single contact record.
type ContactRepository interface {
	Get() (*models.Contact, error)
	Upsert(contact *models.Contact) error
}

// GalleryRepository defines data access for gallery images.
type GalleryRepository interface {
	Create(img *models.GalleryImage) error
	GetByID(id string) (*models.GalleryImage, error)
	GetAll() ([]models.GalleryImage, error)
	Delete(id string) (bool, error)
}
