package httpx

// ProductRequest — тело запросов создания и изменения товара.
type ProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// OrderRequest — тело запроса создания заказа.
type OrderRequest struct {
	ProductIDs []int64 `json:"productIds"`
	TotalPrice float64 `json:"totalPrice"`
}

// ErrorResponse — тело ответа при отказе.
type ErrorResponse struct {
	Message string `json:"message"`
}
