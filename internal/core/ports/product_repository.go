package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// SearchByName matches the keyword against product names with
	// case-insensitive contains semantics.
	SearchByName(ctx context.Context, keyword string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
