package models

import "time"

// GalleryImage is one image in the venue's media gallery.
type GalleryImage struct {
	ID         string    `bson:"id" json:"id"`
	URL        string    `bson:"url" json:"url"`
	PublicID   string    `bson:"public_id" json:"publicId"` // Cloudinary asset identifier
	Caption    string    `bson:"caption,omitempty" json:"caption,omitempty"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	UploadedBy string    `bson:"uploaded_by,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
