package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// WishlistService implements the per-user wishlist set. All operations
// require an authenticated principal.
type WishlistService interface {
	AddToWishlist(ctx context.Context, principal domain.Principal, productID string) (*domain.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, principal domain.Principal, productID string) error
	MyWishlist(ctx context.Context, principal domain.Principal) ([]domain.WishlistItem, error)
	InWishlist(ctx context.Context, principal domain.Principal, productID string) (bool, error)
}
