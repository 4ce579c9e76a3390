package catalog

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	catalogRepo "amberhall/database/repository/catalog"
	"amberhall/models"
	"amberhall/services/storage"
	"amberhall/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultGalleryService is the production GalleryService. Images live in the
// remote media store; the repository keeps the index records.
type DefaultGalleryService struct {
	Repo    catalogRepo.GalleryRepository
	Storage storage.StorageService
}

func (s *DefaultGalleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return s.Repo.GetAll()
}

// UploadImage stages the multipart file to a temp path, pushes it to the
// media store, and records the gallery entry.
func (s *DefaultGalleryService) UploadImage(ctx context.Context, file *multipart.FileHeader, caption, category, uploadedBy string) (*models.GalleryImage, error) {
	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := saveMultipartFile(file, tempPath); err != nil {
		return nil, fmt.Errorf("failed to stage uploaded file: %w", err)
	}
	defer os.Remove(tempPath)

	publicID, url, err := s.Storage.UploadFile(ctx, tempPath, "gallery")
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	img := &models.GalleryImage{
		ID:         uuid.New().String(),
		URL:        url,
		PublicID:   publicID,
		Caption:    caption,
		Category:   category,
		UploadedBy: uploadedBy,
	}
	if err := s.Repo.Create(img); err != nil {
		// Avoid orphaning the uploaded asset when the record insert fails.
		if delErr := s.Storage.DeleteFile(ctx, publicID); delErr != nil {
			utils.GetLogger().Warn("failed to clean up orphaned asset",
				zap.String("publicId", publicID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to record gallery image: %w", err)
	}
	return img, nil
}

// DeleteImage removes the media-store asset, then the record.
func (s *DefaultGalleryService) DeleteImage(ctx context.Context, id string) error {
	img, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrNotFound
	}

	if err := s.Storage.DeleteFile(ctx, img.PublicID); err != nil {
		return fmt.Errorf("failed to delete stored asset: %w", err)
	}
	if _, err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete gallery record: %w", err)
	}
	return nil
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return err
	}
	return nil
}
