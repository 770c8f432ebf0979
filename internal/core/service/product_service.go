package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

// ProductService implements catalog reads for everyone and writes for admins.
type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.FindByCategory(ctx, category)
}

func (s *ProductService) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	return s.products.SearchByName(ctx, keyword)
}

func (s *ProductService) CreateProduct(ctx context.Context, principal domain.Principal, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.RequireRole(principal, domain.RoleAdmin); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, principal domain.Principal, id string, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.RequireRole(principal, domain.RoleAdmin); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.Category = input.Category

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, principal domain.Principal, id string) error {
	if err := domain.RequireRole(principal, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
