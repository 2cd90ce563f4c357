package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics содержит метрики операций каталога и заказов.
type APIMetrics struct {
	// Счётчики успешных операций
	productsCreated prometheus.Counter
	productsUpdated prometheus.Counter
	ordersCreated   prometheus.Counter

	// Счётчики отказов по виду ошибки
	requestRejected *prometheus.CounterVec

	// Гистограмма времени обработки HTTP-запросов
	requestDuration *prometheus.HistogramVec
}

// NewAPIMetrics создаёт метрики, используя дефолтный registerer.
func NewAPIMetrics() *APIMetrics {
	return newAPIMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newAPIMetricsWithRegisterer(registerer prometheus.Registerer) *APIMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &APIMetrics{
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_products_created_total",
			Help: "Total number of products created",
		}),
		productsUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_products_updated_total",
			Help: "Total number of products updated",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_created_total",
			Help: "Total number of orders created",
		}),
		requestRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shop_requests_rejected_total",
			Help: "Total number of rejected requests grouped by operation and error kind",
		}, []string{"operation", "kind"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "shop_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordProductCreated увеличивает счётчик созданных товаров.
func (m *APIMetrics) RecordProductCreated() {
	m.productsCreated.Inc()
}

// RecordProductUpdated увеличивает счётчик изменённых товаров.
func (m *APIMetrics) RecordProductUpdated() {
	m.productsUpdated.Inc()
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *APIMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordRejected увеличивает счётчик отказов для операции и вида ошибки.
func (m *APIMetrics) RecordRejected(operation, kind string) {
	m.requestRejected.WithLabelValues(operation, kind).Inc()
}

// RecordRequestDuration записывает время обработки запроса.
func (m *APIMetrics) RecordRequestDuration(operation string, duration time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
