package domain

import "time"

// WishlistItem marks a product as wished by a user. The wishlist is a set:
// at most one entry per (owner, product) pair.
type WishlistItem struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"user_id" bson:"owner_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
