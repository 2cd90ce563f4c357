package app

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8000")
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9090")
	}
	if cfg.PostgresDSN != "" {
		t.Errorf("PostgresDSN = %q, want empty", cfg.PostgresDSN)
	}
	if cfg.KafkaBrokers != "" {
		t.Errorf("KafkaBrokers = %q, want empty", cfg.KafkaBrokers)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{
		HTTPAddr:    "127.0.0.1:0",
		MetricsAddr: "127.0.0.1:0",
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg)
	}()

	// Даём серверам время подняться, затем останавливаем.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() не завершился после отмены контекста")
	}
}

func TestBuildDependencies_Memory(t *testing.T) {
	deps, cleanup, err := buildDependencies(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("buildDependencies: %v", err)
	}
	defer cleanup()

	if deps.Products == nil || deps.Orders == nil || deps.Outbox == nil {
		t.Fatal("in-memory зависимости должны быть инициализированы")
	}
	if deps.Store != nil {
		t.Fatal("Store должен быть nil без postgres DSN")
	}
}

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	producer, err := initKafkaProducer("", log.WithField("component", "test"))
	if err != nil {
		t.Fatalf("initKafkaProducer: %v", err)
	}
	if producer != nil {
		t.Fatal("producer должен быть nil при пустом списке брокеров")
	}
}
