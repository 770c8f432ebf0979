package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// CreateReviewInput carries the writable fields of a review.
type CreateReviewInput struct {
	ProductID string
	Rating    int
	Content   string
}

// ReviewService implements review CRUD and the derived rating aggregate.
type ReviewService interface {
	ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	// ProductRating reports the average (one decimal place) and count over
	// all current reviews; {0.0, 0} for a product with none.
	ProductRating(ctx context.Context, productID string) (*domain.RatingSummary, error)
	CreateReview(ctx context.Context, principal domain.Principal, input CreateReviewInput) (*domain.Review, error)
	// DeleteReview is owner-only.
	DeleteReview(ctx context.Context, principal domain.Principal, id string) error
}
