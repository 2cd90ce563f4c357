package postgres

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestProductRepositoryIntegration_SaveAssignsID(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	product, err := domain.NewProduct("switch 2", "nouvelle console", 500)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := repo.Save(product); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("expected id assigned by database")
	}

	stored, err := repo.FindOneByID(product.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Title != "switch 2" || stored.Description != "nouvelle console" || stored.Price != 500 {
		t.Fatalf("unexpected stored product: %+v", stored)
	}
}

func TestProductRepositoryIntegration_UpdateFlow(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	product, err := domain.NewProduct("switch", "console de jeu", 3000)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := repo.Save(product); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := repo.FindOneByID(product.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if err := loaded.Update("switch 3", "nouvelle nouvelle console", 5000); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := repo.Save(loaded); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	stored, err := repo.FindOneByID(product.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Title != "switch 3" || stored.Price != 5000 {
		t.Fatalf("expected updated product, got %+v", stored)
	}
}

func TestProductRepositoryIntegration_NotFound(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	if _, err := repo.FindOneByID(424242); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	missing := &domain.Product{ID: 424242, Title: "switch", Description: "", Price: 10}
	if err := repo.Save(missing); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on update of missing row, got %v", err)
	}
}
