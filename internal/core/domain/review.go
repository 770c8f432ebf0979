package domain

import "time"

// Review is a rating plus comment left by a user on a product. At most one
// review may exist per (owner, product) pair, enforced by a unique index at
// the store in addition to the service-level check.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	OwnerID   string    `json:"user_id" bson:"owner_id"`
	Username  string    `json:"username" bson:"username"`
	Rating    int       `json:"rating" bson:"rating"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// RatingSummary is the derived rating aggregate for a product. Average is
// rounded to one decimal place; a product with no reviews reports 0.0 and 0.
type RatingSummary struct {
	Average float64 `json:"average_rating"`
	Count   int64   `json:"review_count"`
}
