package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию репозиториев товара.
// Один адаптер закрывает контракты и создания, и изменения.
func NewProductRepository(store *Store) *productRepository {
	return &productRepository{db: store.DB()}
}

// Save вставляет товар с назначением ID (RETURNING) либо перезаписывает запись.
func (r *productRepository) Save(product *domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if product.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO products (title, description, price)
			VALUES ($1, $2, $3)
			RETURNING id
		`, product.Title, product.Description, product.Price).Scan(&product.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title = $1,
		    description = $2,
		    price = $3
		WHERE id = $4
	`, product.Title, product.Description, product.Price, product.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// FindOneByID возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepository) FindOneByID(id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var product domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, price
		FROM products
		WHERE id = $1
	`, id).Scan(&product.ID, &product.Title, &product.Description, &product.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}

	return &product, nil
}

var (
	_ domain.CreateProductRepository = (*productRepository)(nil)
	_ domain.UpdateProductRepository = (*productRepository)(nil)
)
