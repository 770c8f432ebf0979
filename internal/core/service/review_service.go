package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

// ReviewService implements review CRUD and the derived rating aggregate.
// The aggregate is always recomputed from the source reviews; the cache in
// front of it is invalidated on every review write for the product, so a
// cached value can never disagree with the rows underneath it.
type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	cache    ports.RatingCache
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository, cache ports.RatingCache, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, cache: cache, logger: logger}
}

func (s *ReviewService) ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}

// ProductRating reports the product's average rating (one decimal place)
// and review count. Cache errors degrade to a recompute, never to a failure.
func (s *ReviewService) ProductRating(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	if cached, err := s.cache.Get(ctx, productID); err == nil && cached != nil {
		return cached, nil
	}

	summary, err := s.reviews.RatingSummary(ctx, productID)
	if err != nil {
		return nil, err
	}
	summary.Average = math.Round(summary.Average*10) / 10

	if err := s.cache.Set(ctx, productID, summary); err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID).Msg("rating cache set failed")
	}
	return summary, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, principal domain.Principal, input ports.CreateReviewInput) (*domain.Review, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	exists, err := s.reviews.ExistsByProductAndOwner(ctx, input.ProductID, principal.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		ProductID: input.ProductID,
		OwnerID:   principal.ID,
		Username:  principal.Username,
		Rating:    input.Rating,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}
	// The unique index resolves the race between the existence check and
	// this insert: a concurrent duplicate comes back as ErrReviewExists.
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateRating(ctx, input.ProductID)
	s.logger.Info().Str("product_id", input.ProductID).Str("username", principal.Username).Msg("review created")
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, principal domain.Principal, id string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.RequireOwner(principal, review.OwnerID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, review.ID); err != nil {
		return err
	}
	s.invalidateRating(ctx, review.ProductID)
	return nil
}

func (s *ReviewService) invalidateRating(ctx context.Context, productID string) {
	if err := s.cache.Invalidate(ctx, productID); err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID).Msg("rating cache invalidation failed")
	}
}
