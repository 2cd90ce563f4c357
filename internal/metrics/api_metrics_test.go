package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewAPIMetrics(t *testing.T) {
	metrics := newAPIMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newAPIMetricsWithRegisterer should not return nil")
	}
	if metrics.productsCreated == nil {
		t.Error("productsCreated counter should not be nil")
	}
	if metrics.productsUpdated == nil {
		t.Error("productsUpdated counter should not be nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.requestRejected == nil {
		t.Error("requestRejected counter vec should not be nil")
	}
	if metrics.requestDuration == nil {
		t.Error("requestDuration histogram vec should not be nil")
	}
}

func TestAPIMetrics_Counters(t *testing.T) {
	metrics := newAPIMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordProductCreated()
	metrics.RecordProductCreated()
	metrics.RecordProductUpdated()
	metrics.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := metrics.productsCreated.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Errorf("expected productsCreated=2, got %v", got)
	}

	metric.Reset()
	if err := metrics.ordersCreated.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 1 {
		t.Errorf("expected ordersCreated=1, got %v", got)
	}
}

func TestAPIMetrics_Rejections(t *testing.T) {
	metrics := newAPIMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordRejected("create_product", "validation")
	metrics.RecordRejected("create_product", "validation")
	metrics.RecordRejected("update_product", "not_found")

	metric := &dto.Metric{}
	counter, err := metrics.requestRejected.GetMetricWithLabelValues("create_product", "validation")
	if err != nil {
		t.Fatalf("get counter: %v", err)
	}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Errorf("expected 2 validation rejections, got %v", got)
	}
}

func TestAPIMetrics_RequestDuration(t *testing.T) {
	metrics := newAPIMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordRequestDuration("create_order", 25*time.Millisecond)

	observer, err := metrics.requestDuration.GetMetricWithLabelValues("create_order")
	if err != nil {
		t.Fatalf("get histogram: %v", err)
	}
	histogram, ok := observer.(prometheus.Histogram)
	if !ok {
		t.Fatalf("unexpected observer type %T", observer)
	}

	metric := &dto.Metric{}
	if err := histogram.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetHistogram().GetSampleCount(); got != 1 {
		t.Errorf("expected 1 observation, got %d", got)
	}
}

func TestAPIMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newAPIMetricsWithRegisterer(registry)
	second := newAPIMetricsWithRegisterer(registry)

	// Повторная регистрация возвращает уже существующие коллекторы.
	if first.productsCreated != second.productsCreated {
		t.Error("expected productsCreated collector to be reused")
	}
	if first.requestDuration != second.requestDuration {
		t.Error("expected requestDuration collector to be reused")
	}
}
