package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, обработка ещё не началась.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusConfirmed — заказ подтверждён.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered — заказ доставлен клиенту.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

const (
	orderProductsMin  = 1
	orderProductsMax  = 5
	orderTotalMinIncl = 2
	orderTotalMaxIncl = 500
)

// Order — заказ на товары каталога. Количество позиций и итоговая сумма
// проверяются при создании; объект с нарушенными инвариантами не создаётся.
type Order struct {
	// ID назначается хранилищем при первом сохранении; 0 — ещё не сохранён.
	ID         int64
	ProductIDs []int64
	TotalPrice float64
	Status     OrderStatus
	CreatedAt  time.Time
}

// NewOrder создаёт заказ в статусе PENDING с текущим временем создания.
// Порядок проверок: нижняя граница количества, верхняя граница количества,
// нижняя граница суммы, верхняя граница суммы; первая нарушенная побеждает.
func NewOrder(productIDs []int64, totalPrice float64) (*Order, error) {
	if len(productIDs) < orderProductsMin {
		return nil, ErrOrderEmpty
	}
	if len(productIDs) > orderProductsMax {
		return nil, ErrOrderTooManyProducts
	}
	if totalPrice < orderTotalMinIncl {
		return nil, ErrOrderTotalTooLow
	}
	if totalPrice > orderTotalMaxIncl {
		return nil, ErrOrderTotalTooHigh
	}

	return &Order{
		ProductIDs: productIDs,
		TotalPrice: totalPrice,
		Status:     OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
