package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/viewmall/commerce-api/internal/api/metrics"
	"github.com/viewmall/commerce-api/internal/core/domain"
)

const ratingTTL = time.Hour

// RatingCache caches per-product rating aggregates.
// Key format: rating:<product_id>
type RatingCache struct {
	client *redis.Client
}

// NewRatingCache creates a RatingCache wrapping the given Redis client.
func NewRatingCache(client *redis.Client) *RatingCache {
	return &RatingCache{client: client}
}

// Get returns the cached summary for a product, or (nil, nil) on a miss.
func (c *RatingCache) Get(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	raw, err := c.client.Get(ctx, c.key(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RatingCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rating cache get: %w", err)
	}

	var summary domain.RatingSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A corrupt entry reads as a miss; the next Set overwrites it.
		metrics.RatingCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.RatingCacheTotal.WithLabelValues("hit").Inc()
	return &summary, nil
}

// Set stores a summary for a product (expires after ratingTTL).
func (c *RatingCache) Set(ctx context.Context, productID string, summary *domain.RatingSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("rating cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(productID), raw, ratingTTL).Err()
}

// Invalidate removes the cached summary for a product.
func (c *RatingCache) Invalidate(ctx context.Context, productID string) error {
	return c.client.Del(ctx, c.key(productID)).Err()
}

func (c *RatingCache) key(productID string) string {
	return fmt.Sprintf("rating:%s", productID)
}
