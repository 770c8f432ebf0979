package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// WishlistRepository persists wishlist entries as a set: a unique index on
// (owner_id, product_id) guarantees at most one entry per pair, and Create
// reports a collision as domain.ErrWishlistExists.
type WishlistRepository interface {
	Create(ctx context.Context, item *domain.WishlistItem) error
	// DeleteByOwnerAndProduct returns domain.ErrWishlistNotFound when no
	// entry matches.
	DeleteByOwnerAndProduct(ctx context.Context, ownerID, productID string) error
	FindByOwner(ctx context.Context, ownerID string) ([]domain.WishlistItem, error)
	Exists(ctx context.Context, ownerID, productID string) (bool, error)
}
