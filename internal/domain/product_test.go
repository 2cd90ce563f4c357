package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestNewProduct_Ok(t *testing.T) {
	product, err := domain.NewProduct("switch 2", "nouvelle console", 500)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if product.ID != 0 {
		t.Fatalf("expected unsaved product to have id 0, got %d", product.ID)
	}
	if product.Title != "switch 2" {
		t.Fatalf("expected title %q, got %q", "switch 2", product.Title)
	}
	if product.Description != "nouvelle console" {
		t.Fatalf("expected description %q, got %q", "nouvelle console", product.Description)
	}
	if product.Price != 500 {
		t.Fatalf("expected price 500, got %v", product.Price)
	}
}

func TestNewProduct_Errors(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		price   float64
		wantErr error
	}{
		{name: "title too short", title: "sw", price: 500, wantErr: domain.ErrTitleTooShort},
		{name: "title short and price invalid", title: "sw", price: -10, wantErr: domain.ErrTitleTooShort},
		{name: "price zero", title: "switch", price: 0, wantErr: domain.ErrPriceTooLow},
		{name: "price negative", title: "switch", price: -10, wantErr: domain.ErrPriceTooLow},
		{name: "price at upper bound", title: "switch", price: 10000, wantErr: domain.ErrPriceTooHigh},
		{name: "price above upper bound", title: "switch", price: 11000, wantErr: domain.ErrPriceTooHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewProduct(tc.title, "desc", tc.price)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error kind, got %T", err)
			}
		})
	}
}

func TestNewProduct_PriceBoundsExclusive(t *testing.T) {
	// Границы цены строгие: 0 и 10000 недопустимы, значения рядом — допустимы.
	if _, err := domain.NewProduct("switch", "desc", 0.01); err != nil {
		t.Fatalf("price just above 0 must be valid, got %v", err)
	}
	if _, err := domain.NewProduct("switch", "desc", 9999.99); err != nil {
		t.Fatalf("price just below 10000 must be valid, got %v", err)
	}
}

func TestProductUpdate_Ok(t *testing.T) {
	product, err := domain.NewProduct("switch", "console de jeu", 3000)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := product.Update("switch 3", "nouvelle nouvelle console", 5000); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if product.Title != "switch 3" || product.Description != "nouvelle nouvelle console" || product.Price != 5000 {
		t.Fatalf("unexpected state after update: %+v", product)
	}

	// Повторный вызов с теми же аргументами не меняет результат.
	if err := product.Update("switch 3", "nouvelle nouvelle console", 5000); err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if product.Title != "switch 3" || product.Price != 5000 {
		t.Fatalf("update is not idempotent: %+v", product)
	}
}

func TestProductUpdate_NoPartialMutationOnFailure(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		price   float64
		wantErr error
	}{
		{name: "title too short", title: "sw", price: 5000, wantErr: domain.ErrTitleTooShort},
		{name: "price negative", title: "switch 3", price: -10, wantErr: domain.ErrPriceTooLow},
		{name: "price too high", title: "switch 3", price: 10001, wantErr: domain.ErrPriceTooHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := domain.NewProduct("switch", "console de jeu", 3000)
			if err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			if err := product.Update(tc.title, "autre description", tc.price); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			// Неудачное изменение не должно затронуть ни одно поле.
			if product.Title != "switch" || product.Description != "console de jeu" || product.Price != 3000 {
				t.Fatalf("product mutated on failed update: %+v", product)
			}
		})
	}
}
