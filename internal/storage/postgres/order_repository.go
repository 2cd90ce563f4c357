package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию CreateOrderRepository.
func NewOrderRepository(store *Store) *orderRepository {
	return &orderRepository{db: store.DB()}
}

// Save вставляет заказ и его позиции в одной транзакции,
// назначая ID при первом сохранении.
func (r *orderRepository) Save(order *domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if order.ID == 0 {
		err = tx.QueryRowContext(ctx, `
			INSERT INTO orders (total_price, status, created_at)
			VALUES ($1, $2, $3)
			RETURNING id
		`, order.TotalPrice, string(order.Status), order.CreatedAt).Scan(&order.ID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
	} else {
		if _, err = tx.ExecContext(ctx, `
			UPDATE orders
			SET total_price = $1,
			    status = $2
			WHERE id = $3
		`, order.TotalPrice, string(order.Status), order.ID); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			DELETE FROM order_products WHERE order_id = $1
		`, order.ID); err != nil {
			return fmt.Errorf("clear order products: %w", err)
		}
	}

	for position, productID := range order.ProductIDs {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_products (order_id, position, product_id)
			VALUES ($1, $2, $3)
		`, order.ID, position, productID); err != nil {
			return fmt.Errorf("insert order product: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save order: %w", err)
	}

	return nil
}

// Get возвращает заказ по идентификатору; используется интеграционными тестами.
func (r *orderRepository) Get(id int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var order domain.Order
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, total_price, status, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.TotalPrice, &status, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	order.Status = domain.OrderStatus(status)

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id
		FROM order_products
		WHERE order_id = $1
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("scan order product: %w", err)
		}
		order.ProductIDs = append(order.ProductIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order products: %w", err)
	}

	return &order, nil
}

var _ domain.CreateOrderRepository = (*orderRepository)(nil)
