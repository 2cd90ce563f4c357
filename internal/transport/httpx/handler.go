package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/usecase"
)

const (
	opCreateProduct = "create_product"
	opUpdateProduct = "update_product"
	opCreateOrder   = "create_order"
)

// Handler обрабатывает HTTP-команды каталога и заказов.
type Handler struct {
	createProduct *usecase.CreateProduct
	updateProduct *usecase.UpdateProduct
	createOrder   *usecase.CreateOrder
	// outbox nil-safe: при nil доменные события не записываются.
	outbox  domain.OutboxRepository
	metrics *metrics.APIMetrics
	logger  *log.Entry
}

// NewHandler конструирует handler с его use case-ами и зависимостями.
// outbox может быть nil — тогда публикация доменных событий отключена.
func NewHandler(
	createProduct *usecase.CreateProduct,
	updateProduct *usecase.UpdateProduct,
	createOrder *usecase.CreateOrder,
	outbox domain.OutboxRepository,
	apiMetrics *metrics.APIMetrics,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http-handler")
	}
	if apiMetrics == nil {
		apiMetrics = metrics.NewAPIMetrics()
	}
	return &Handler{
		createProduct: createProduct,
		updateProduct: updateProduct,
		createOrder:   createOrder,
		outbox:        outbox,
		metrics:       apiMetrics,
		logger:        logger,
	}
}

// CreateProduct обрабатывает POST /api/product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	defer func() {
		h.metrics.RecordRequestDuration(opCreateProduct, time.Since(started))
	}()

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordRejected(opCreateProduct, "bad_request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.createProduct.Execute(usecase.CreateProductCommand{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.writeDomainError(w, opCreateProduct, err)
		return
	}

	h.metrics.RecordProductCreated()
	h.recordProductEvent(kafka.EventTypeProductCreated, product)
	w.WriteHeader(http.StatusCreated)
}

// UpdateProduct обрабатывает POST /api/product/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	defer func() {
		h.metrics.RecordRequestDuration(opUpdateProduct, time.Since(started))
	}()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.metrics.RecordRejected(opUpdateProduct, "bad_request")
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordRejected(opUpdateProduct, "bad_request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.updateProduct.Execute(usecase.UpdateProductCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.writeDomainError(w, opUpdateProduct, err)
		return
	}

	h.metrics.RecordProductUpdated()
	h.recordProductEvent(kafka.EventTypeProductUpdated, product)
	w.WriteHeader(http.StatusCreated)
}

// CreateOrder обрабатывает POST /api/order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	defer func() {
		h.metrics.RecordRequestDuration(opCreateOrder, time.Since(started))
	}()

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordRejected(opCreateOrder, "bad_request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.createOrder.Execute(usecase.CreateOrderCommand{
		ProductIDs: req.ProductIDs,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		h.writeDomainError(w, opCreateOrder, err)
		return
	}

	h.metrics.RecordOrderCreated()
	h.recordOrderEvent(order)
	w.WriteHeader(http.StatusCreated)
}

// Health обрабатывает GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// writeDomainError транслирует ошибку use case в HTTP-ответ:
// нарушение правил и отсутствие сущности — 400, сбой хранилища — 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, operation string, err error) {
	switch {
	case domain.IsValidation(err):
		h.metrics.RecordRejected(operation, "validation")
		writeError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		h.metrics.RecordRejected(operation, "not_found")
		writeError(w, http.StatusBadRequest, err.Error())
	case domain.IsPersistence(err):
		h.metrics.RecordRejected(operation, "persistence")
		h.logger.WithError(err).WithField("operation", operation).Error("storage failure")
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		h.metrics.RecordRejected(operation, "internal")
		h.logger.WithError(err).WithField("operation", operation).Error("unexpected failure")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) recordProductEvent(eventType kafka.EventType, product *domain.Product) {
	if h.outbox == nil {
		return
	}

	payload, err := json.Marshal(kafka.ProductEvent{
		EventType:   eventType,
		ProductID:   product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Warn("failed to marshal product event")
		return
	}

	if _, err := h.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: kafka.AggregateTypeProduct,
		AggregateID:   strconv.FormatInt(product.ID, 10),
		EventType:     string(eventType),
		Payload:       payload,
	}); err != nil {
		// Событие best-effort: отказ outbox не ломает уже выполненную команду.
		h.logger.WithError(err).Warn("failed to enqueue product event")
	}
}

func (h *Handler) recordOrderEvent(order *domain.Order) {
	if h.outbox == nil {
		return
	}

	payload, err := json.Marshal(kafka.OrderEvent{
		EventType:  kafka.EventTypeOrderCreated,
		OrderID:    order.ID,
		ProductIDs: order.ProductIDs,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Warn("failed to marshal order event")
		return
	}

	if _, err := h.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: kafka.AggregateTypeOrder,
		AggregateID:   strconv.FormatInt(order.ID, 10),
		EventType:     string(kafka.EventTypeOrderCreated),
		Payload:       payload,
	}); err != nil {
		h.logger.WithError(err).Warn("failed to enqueue order event")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
