package domain

// Каждый use case зависит от минимального набора возможностей хранилища,
// а не от общего репозитория. Реализации назначают ID при первом сохранении
// (ID == 0) и перезаписывают запись при повторном.

// CreateProductRepository описывает требования сценария создания товара.
type CreateProductRepository interface {
	// Save сохраняет товар и проставляет ID, если он ещё не назначен.
	Save(product *Product) error
}

// UpdateProductRepository описывает требования сценария изменения товара.
type UpdateProductRepository interface {
	// FindOneByID возвращает товар или ErrProductNotFound, если его нет.
	FindOneByID(id int64) (*Product, error)
	// Save перезаписывает существующий товар.
	Save(product *Product) error
}

// CreateOrderRepository описывает требования сценария создания заказа.
type CreateOrderRepository interface {
	// Save сохраняет заказ и проставляет ID, если он ещё не назначен.
	Save(order *Order) error
}
