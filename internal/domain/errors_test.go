package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")
	persistence := domain.NewPersistenceError("Error creating product", cause)

	if !domain.IsPersistence(persistence) {
		t.Fatal("expected persistence error kind")
	}
	if domain.IsValidation(persistence) || domain.IsNotFound(persistence) {
		t.Fatal("persistence error must not match other kinds")
	}
	// Клиент видит только фиксированное сообщение, первопричина доступна через Unwrap.
	if persistence.Error() != "Error creating product" {
		t.Fatalf("unexpected message: %q", persistence.Error())
	}
	if !errors.Is(persistence, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}

	if !domain.IsValidation(domain.ErrTitleTooShort) {
		t.Fatal("expected validation error kind")
	}
	if !domain.IsNotFound(domain.ErrProductNotFound) {
		t.Fatal("expected not-found error kind")
	}

	// Кind распознаётся и через дополнительное оборачивание.
	wrapped := fmt.Errorf("use case: %w", domain.ErrTitleTooShort)
	if !domain.IsValidation(wrapped) {
		t.Fatal("expected validation kind through wrapping")
	}
}

func TestValidationMessages(t *testing.T) {
	cases := map[error]string{
		domain.ErrTitleTooShort:        "titre trop court",
		domain.ErrPriceTooLow:          "le prix doit être supérieur à 0",
		domain.ErrPriceTooHigh:         "le prix doit être inférieur à 10000",
		domain.ErrOrderEmpty:           "Une commande doit contenir au moins 1 produit",
		domain.ErrOrderTooManyProducts: "Une commande ne peut contenir plus de 5 produits",
		domain.ErrOrderTotalTooLow:     "Le prix total doit être supérieur ou égal à 2€",
		domain.ErrOrderTotalTooHigh:    "Le prix total doit être inférieur ou égal à 500€",
		domain.ErrProductNotFound:      "Product not found",
	}

	for err, want := range cases {
		if err.Error() != want {
			t.Fatalf("expected message %q, got %q", want, err.Error())
		}
	}
}
