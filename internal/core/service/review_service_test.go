package service

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo(ids ...string) *stubProductRepo {
	r := &stubProductRepo{products: make(map[string]*domain.Product)}
	for _, id := range ids {
		r.products[id] = &domain.Product{ID: id, Name: "product " + id}
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	all := []domain.Product{}
	for _, p := range r.products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	matched := []domain.Product{}
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, *p)
		}
	}
	return matched, nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, keyword string) ([]domain.Product, error) {
	matched := []domain.Product{}
	for _, p := range r.products {
		if containsFold(p.Name, keyword) {
			matched = append(matched, *p)
		}
	}
	return matched, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	for _, existing := range r.reviews {
		if existing.ProductID == review.ProductID && existing.OwnerID == review.OwnerID {
			return domain.ErrReviewExists
		}
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if review, ok := r.reviews[id]; ok {
		clone := *review
		return &clone, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	matched := []domain.Review{}
	for _, review := range r.reviews {
		if review.ProductID == productID {
			matched = append(matched, *review)
		}
	}
	return matched, nil
}

func (r *stubReviewRepo) ExistsByProductAndOwner(_ context.Context, productID, ownerID string) (bool, error) {
	for _, review := range r.reviews {
		if review.ProductID == productID && review.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) RatingSummary(_ context.Context, productID string) (*domain.RatingSummary, error) {
	var sum, count int64
	for _, review := range r.reviews {
		if review.ProductID == productID {
			sum += int64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return &domain.RatingSummary{}, nil
	}
	return &domain.RatingSummary{Average: float64(sum) / float64(count), Count: count}, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

// stubRatingCache records operations so tests can assert on invalidation.
type stubRatingCache struct {
	entries      map[string]*domain.RatingSummary
	invalidated  []string
	getErr       error
	setCallCount int
}

func newStubRatingCache() *stubRatingCache {
	return &stubRatingCache{entries: make(map[string]*domain.RatingSummary)}
}

func (c *stubRatingCache) Get(_ context.Context, productID string) (*domain.RatingSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if s, ok := c.entries[productID]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (c *stubRatingCache) Set(_ context.Context, productID string, summary *domain.RatingSummary) error {
	clone := *summary
	c.entries[productID] = &clone
	c.setCallCount++
	return nil
}

func (c *stubRatingCache) Invalidate(_ context.Context, productID string) error {
	delete(c.entries, productID)
	c.invalidated = append(c.invalidated, productID)
	return nil
}

var (
	reviewUser  = domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleUser}
	reviewOther = domain.Principal{ID: "u2", Username: "bob", Role: domain.RoleUser}
)

func newReviewFixture() (*ReviewService, *stubReviewRepo, *stubRatingCache) {
	reviews := newStubReviewRepo()
	cache := newStubRatingCache()
	svc := NewReviewService(reviews, newStubProductRepo("p1"), cache, zerolog.Nop())
	return svc, reviews, cache
}

func seedReview(t *testing.T, svc *ReviewService, p domain.Principal, rating int) *domain.Review {
	t.Helper()
	review, err := svc.CreateReview(context.Background(), p, ports.CreateReviewInput{
		ProductID: "p1",
		Rating:    rating,
		Content:   "fine",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}

func TestReviewService_ProductRating_Average(t *testing.T) {
	svc, _, _ := newReviewFixture()

	seedReview(t, svc, reviewUser, 5)
	seedReview(t, svc, reviewOther, 3)
	seedReview(t, svc, domain.Principal{ID: "u3", Username: "carol", Role: domain.RoleUser}, 4)

	summary, err := svc.ProductRating(context.Background(), "p1")
	if err != nil {
		t.Fatalf("product rating: %v", err)
	}
	if summary.Average != 4.0 {
		t.Fatalf("expected average 4.0, got %v", summary.Average)
	}
	if summary.Count != 3 {
		t.Fatalf("expected count 3, got %d", summary.Count)
	}
}

func TestReviewService_ProductRating_Rounding(t *testing.T) {
	svc, _, _ := newReviewFixture()

	seedReview(t, svc, reviewUser, 5)
	seedReview(t, svc, reviewOther, 4)
	seedReview(t, svc, domain.Principal{ID: "u3", Username: "carol", Role: domain.RoleUser}, 4)

	summary, err := svc.ProductRating(context.Background(), "p1")
	if err != nil {
		t.Fatalf("product rating: %v", err)
	}
	// 13/3 = 4.333... rounds to 4.3.
	if summary.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", summary.Average)
	}
}

func TestReviewService_ProductRating_NoReviews(t *testing.T) {
	svc, _, _ := newReviewFixture()

	summary, err := svc.ProductRating(context.Background(), "p1")
	if err != nil {
		t.Fatalf("product rating: %v", err)
	}
	if summary.Average != 0.0 || summary.Count != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestReviewService_ProductRating_CacheHit(t *testing.T) {
	svc, _, cache := newReviewFixture()
	seedReview(t, svc, reviewUser, 5)

	if _, err := svc.ProductRating(context.Background(), "p1"); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if cache.setCallCount != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.setCallCount)
	}

	// The second read hits the cache and does not refill it.
	if _, err := svc.ProductRating(context.Background(), "p1"); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if cache.setCallCount != 1 {
		t.Fatalf("cache refilled on hit: %d fills", cache.setCallCount)
	}
}

func TestReviewService_ProductRating_CacheFailureDegrades(t *testing.T) {
	svc, _, cache := newReviewFixture()
	seedReview(t, svc, reviewUser, 5)
	cache.getErr = context.DeadlineExceeded

	summary, err := svc.ProductRating(context.Background(), "p1")
	if err != nil {
		t.Fatalf("expected recompute despite cache failure, got %v", err)
	}
	if summary.Average != 5.0 || summary.Count != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestReviewService_CreateReview_Guards(t *testing.T) {
	svc, _, _ := newReviewFixture()

	if _, err := svc.CreateReview(context.Background(), domain.Anonymous(), ports.CreateReviewInput{ProductID: "p1", Rating: 5}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	for _, rating := range []int{0, -1, 6} {
		if _, err := svc.CreateReview(context.Background(), reviewUser, ports.CreateReviewInput{ProductID: "p1", Rating: rating}); err != domain.ErrInvalidRating {
			t.Fatalf("expected ErrInvalidRating for %d, got %v", rating, err)
		}
	}
	if _, err := svc.CreateReview(context.Background(), reviewUser, ports.CreateReviewInput{ProductID: "missing", Rating: 5}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	svc, _, _ := newReviewFixture()
	seedReview(t, svc, reviewUser, 5)

	if _, err := svc.CreateReview(context.Background(), reviewUser, ports.CreateReviewInput{ProductID: "p1", Rating: 3}); err != domain.ErrReviewExists {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
	// A different user may still review the same product.
	if _, err := svc.CreateReview(context.Background(), reviewOther, ports.CreateReviewInput{ProductID: "p1", Rating: 3}); err != nil {
		t.Fatalf("second user review failed: %v", err)
	}
}

func TestReviewService_CreateReview_InvalidatesCache(t *testing.T) {
	svc, _, cache := newReviewFixture()

	seedReview(t, svc, reviewUser, 5)
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "p1" {
		t.Fatalf("expected invalidation for p1, got %v", cache.invalidated)
	}

	// Warm the cache, add a second review, and observe the stale entry go.
	if _, err := svc.ProductRating(context.Background(), "p1"); err != nil {
		t.Fatalf("product rating: %v", err)
	}
	seedReview(t, svc, reviewOther, 3)

	summary, err := svc.ProductRating(context.Background(), "p1")
	if err != nil {
		t.Fatalf("product rating: %v", err)
	}
	if summary.Average != 4.0 || summary.Count != 2 {
		t.Fatalf("stale aggregate served: %+v", summary)
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	svc, repo, cache := newReviewFixture()
	review := seedReview(t, svc, reviewUser, 5)

	if err := svc.DeleteReview(context.Background(), reviewOther, review.ID); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.DeleteReview(context.Background(), reviewUser, "missing"); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}

	before := len(cache.invalidated)
	if err := svc.DeleteReview(context.Background(), reviewUser, review.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.reviews) != 0 {
		t.Fatalf("review not removed")
	}
	if len(cache.invalidated) != before+1 {
		t.Fatalf("delete did not invalidate rating cache")
	}
}
