package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

var (
	productAdmin = domain.Principal{ID: "a1", Username: "root", Role: domain.RoleAdmin}
	productUser  = domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleUser}
)

func TestProductService_Create_AdminOnly(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	input := ports.ProductInput{Name: "keyboard", Price: 49.90, Stock: 10, Category: "peripherals"}

	if _, err := svc.CreateProduct(context.Background(), productUser, input); err != domain.ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.Anonymous(), input); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	product, err := svc.CreateProduct(context.Background(), productAdmin, input)
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if product.ID == "" || product.Name != "keyboard" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.CreateProduct(context.Background(), productAdmin, ports.ProductInput{Name: "keyboard", Price: 49.90})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateProduct(context.Background(), productUser, created.ID, ports.ProductInput{Name: "mouse"}); err != domain.ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}

	updated, err := svc.UpdateProduct(context.Background(), productAdmin, created.ID, ports.ProductInput{Name: "mouse", Price: 19.90})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "mouse" || updated.Price != 19.90 {
		t.Fatalf("unexpected product: %+v", updated)
	}

	if _, err := svc.UpdateProduct(context.Background(), productAdmin, "missing", ports.ProductInput{Name: "x"}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo("p1")
	svc := NewProductService(repo, zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), productUser, "p1"); err != domain.ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), productAdmin, "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), productAdmin, "p1"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Reads_NoAuth(t *testing.T) {
	repo := newStubProductRepo("p1", "p2")
	svc := NewProductService(repo, zerolog.Nop())

	all, err := svc.ListProducts(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("list failed: %v (%d items)", err, len(all))
	}
	product, err := svc.GetProduct(context.Background(), "p1")
	if err != nil || product.ID != "p1" {
		t.Fatalf("get failed: %v", err)
	}
	results, err := svc.SearchProducts(context.Background(), "PRODUCT")
	if err != nil || len(results) != 2 {
		t.Fatalf("search failed: %v (%d items)", err, len(results))
	}
}
