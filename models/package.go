package models

import "time"

// Pricing modes for a service package.
const (
	PricingFixed     = "fixed"
	PricingPerPerson = "perPerson"
	PricingCustom    = "custom"
)

// PriceTier maps a people count to a price for tiered packages.
type PriceTier struct {
	People int   `bson:"people" json:"people"`
	Price  int64 `bson:"price" json:"price"`
}

// MenuSection is a titled group of menu items within a package.
type MenuSection struct {
	Title string   `bson:"title" json:"title"`
	Items []string `bson:"items" json:"items"`
}

// Package represents a bookable service package for the venue.
type Package struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Category    string        `bson:"category" json:"category"`
	Description string        `bson:"description" json:"description"`
	PricingMode string        `bson:"pricing_mode" json:"pricingMode"`
	Price       int64         `bson:"price,omitempty" json:"price,omitempty"`
	PriceTiers  []PriceTier   `bson:"price_tiers,omitempty" json:"priceTiers,omitempty"`
	Inclusions  []string      `bson:"inclusions,omitempty" json:"inclusions,omitempty"`
	Exclusions  []string      `bson:"exclusions,omitempty" json:"exclusions,omitempty"`
	Menu        []MenuSection `bson:"menu,omitempty" json:"menu,omitempty"`
	Terms       []string      `bson:"terms,omitempty" json:"terms,omitempty"`
	Images      []string      `bson:"images,omitempty" json:"images,omitempty"`
	CreatedBy   string        `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}
