package catalog

import (
	"context"
	"mime/multipart"

	"amberhall/models"
)

// PackageService manages the venue's service packages.
type PackageService interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	CreatePackage(ctx context.Context, pkg models.Package, createdBy string) (*models.Package, error)
	UpdatePackage(ctx context.Context, pkg models.Package) (*models.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

// ContactService manages the venue's single contact record.
type ContactService interface {
	GetContact(ctx context.Context) (*models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact, updatedBy string) (*models.Contact, error)
}

// GalleryService manages the media gallery backed by the remote media store.
type GalleryService interface {
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	UploadImage(ctx context.Context, file *multipart.FileHeader, caption, category, uploadedBy string) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, id string) error
}
