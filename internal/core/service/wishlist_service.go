package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

// WishlistService implements the per-user wishlist set.
type WishlistService struct {
	wishlist ports.WishlistRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewWishlistService(wishlist ports.WishlistRepository, products ports.ProductRepository, logger zerolog.Logger) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products, logger: logger}
}

func (s *WishlistService) AddToWishlist(ctx context.Context, principal domain.Principal, productID string) (*domain.WishlistItem, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	exists, err := s.wishlist.Exists(ctx, principal.ID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrWishlistExists
	}

	item := &domain.WishlistItem{
		ID:        uuid.NewString(),
		OwnerID:   principal.ID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	// Concurrent duplicate adds are settled by the (owner, product) unique
	// index: exactly one insert survives.
	if err := s.wishlist.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) RemoveFromWishlist(ctx context.Context, principal domain.Principal, productID string) error {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return err
	}
	return s.wishlist.DeleteByOwnerAndProduct(ctx, principal.ID, productID)
}

func (s *WishlistService) MyWishlist(ctx context.Context, principal domain.Principal) ([]domain.WishlistItem, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.wishlist.FindByOwner(ctx, principal.ID)
}

func (s *WishlistService) InWishlist(ctx context.Context, principal domain.Principal, productID string) (bool, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return false, err
	}
	return s.wishlist.Exists(ctx, principal.ID, productID)
}
