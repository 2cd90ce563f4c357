package kafka

import "time"

// EventType определяет тип доменного события.
type EventType string

const (
	// События товаров.
	EventTypeProductCreated EventType = "product.created"
	EventTypeProductUpdated EventType = "product.updated"

	// События заказов.
	EventTypeOrderCreated EventType = "order.created"
)

// Topics для Kafka.
const (
	TopicProductEvents = "shop.product.events"
	TopicOrderEvents   = "shop.order.events"
)

// Типы агрегатов в outbox-сообщениях.
const (
	AggregateTypeProduct = "product"
	AggregateTypeOrder   = "order"
)

// ProductEvent — полезная нагрузка событий товара.
type ProductEvent struct {
	EventType   EventType `json:"event_type"`
	ProductID   int64     `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Timestamp   time.Time `json:"timestamp"`
}

// OrderEvent — полезная нагрузка событий заказа.
type OrderEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    int64     `json:"order_id"`
	ProductIDs []int64   `json:"product_ids"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// TopicForAggregate выбирает topic по типу агрегата outbox-сообщения.
func TopicForAggregate(aggregateType string) string {
	if aggregateType == AggregateTypeOrder {
		return TopicOrderEvents
	}
	return TopicProductEvents
}
