package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
	Category    string
}

// ProductService implements catalog reads for everyone and catalog writes
// for admins.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, principal domain.Principal, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, principal domain.Principal, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, principal domain.Principal, id string) error
}
