package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

const wishlistCollection = "wishlist"

// WishlistRepository persists wishlist entries with a unique
// (owner_id, product_id) index: the wishlist is a set, not a list.
type WishlistRepository struct {
	coll *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{coll: db.Collection(wishlistCollection)}
}

func (r *WishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWishlistExists
		}
		return fmt.Errorf("insert wishlist entry: %w", err)
	}
	return nil
}

func (r *WishlistRepository) DeleteByOwnerAndProduct(ctx context.Context, ownerID, productID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"owner_id": ownerID, "product_id": productID})
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWishlistNotFound
	}
	return nil
}

func (r *WishlistRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find wishlist: %w", err)
	}
	defer cursor.Close(ctx)

	items := []domain.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return items, nil
}

func (r *WishlistRepository) Exists(ctx context.Context, ownerID, productID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID, "product_id": productID})
	if err != nil {
		return false, fmt.Errorf("count wishlist entries: %w", err)
	}
	return count > 0, nil
}

// EnsureIndexes creates the unique (owner_id, product_id) index.
func (r *WishlistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
