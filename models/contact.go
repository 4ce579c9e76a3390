package models

import "time"

// Contact is the venue's public contact record. A single document is kept.
type Contact struct {
	ID        string            `bson:"id" json:"id"`
	Phone     string            `bson:"phone" json:"phone"`
	Email     string            `bson:"email" json:"email"`
	Address   string            `bson:"address" json:"address"`
	MapURL    string            `bson:"map_url,omitempty" json:"mapUrl,omitempty"`
	Socials   map[string]string `bson:"socials,omitempty" json:"socials,omitempty"`
	UpdatedBy string            `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updatedAt"`
}
