package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
	"github.com/vladislavdragonenkov/shop/internal/storage/postgres"
)

// productStore объединяет контракты создания и обновления товара:
// оба backend-а (memory и postgres) реализуют их одной структурой.
type productStore interface {
	domain.CreateProductRepository
	domain.UpdateProductRepository
}

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Products productStore
	Orders   domain.CreateOrderRepository
	Outbox   domain.OutboxRepository
	// Store не nil только в режиме PostgreSQL.
	Store  *postgres.Store
	Logger *log.Entry
}

// buildDependencies выбирает хранилище по конфигурации: PostgreSQL при
// заданном DSN, иначе in-memory. Возвращаемый cleanup закрывает ресурсы
// хранилища и безопасен для вызова в любом режиме.
func buildDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, func(), error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if cfg.PostgresDSN == "" {
		logger.Info("postgres DSN не задан, используем in-memory хранилище")
		return &Dependencies{
			Products: memory.NewProductRepository(),
			Orders:   memory.NewOrderRepository(),
			Outbox:   memory.NewOutboxRepository(),
			Logger:   logger,
		}, func() {}, nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	logger.Info("postgres хранилище инициализировано")

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	}

	return &Dependencies{
		Products: postgres.NewProductRepository(store),
		Orders:   postgres.NewOrderRepository(store),
		Outbox:   postgres.NewOutboxRepository(store),
		Store:    store,
		Logger:   logger,
	}, cleanup, nil
}
