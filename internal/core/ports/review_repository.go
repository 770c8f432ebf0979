package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// ReviewRepository persists product reviews. A unique index on
// (product_id, owner_id) backs the one-review-per-user-per-product
// invariant; Create reports a collision as domain.ErrReviewExists.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	ExistsByProductAndOwner(ctx context.Context, productID, ownerID string) (bool, error)
	// RatingSummary computes the average rating and review count for a
	// product from the source rows. Zero reviews yields {0, 0}.
	RatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error)
	Delete(ctx context.Context, id string) error
}

// RatingCache fronts RatingSummary with a per-product cache. Review writes
// must invalidate the product's entry before returning so a cached aggregate
// can never outlive the rows it was computed from. Get returns (nil, nil)
// on a miss; cache failures are advisory and never fail the request.
type RatingCache interface {
	Get(ctx context.Context, productID string) (*domain.RatingSummary, error)
	Set(ctx context.Context, productID string, summary *domain.RatingSummary) error
	Invalidate(ctx context.Context, productID string) error
}
