package domain

import "time"

// Product is a catalog entry. Its rating aggregate is not stored here; it is
// derived from the product's reviews on demand (see RatingSummary).
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category    string    `json:"category" bson:"category"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
