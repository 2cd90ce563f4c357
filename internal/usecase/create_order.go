package usecase

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// CreateOrderCommand — плоская команда от транспортного слоя.
type CreateOrderCommand struct {
	ProductIDs []int64
	TotalPrice float64
}

// CreateOrder создаёт заказ: валидация в сущности, затем одно сохранение.
type CreateOrder struct {
	repo   domain.CreateOrderRepository
	logger *log.Entry
}

// NewCreateOrder конструирует use case с его зависимостями.
func NewCreateOrder(repo domain.CreateOrderRepository, logger *log.Entry) *CreateOrder {
	if logger == nil {
		logger = log.WithField("component", "create-order")
	}
	return &CreateOrder{repo: repo, logger: logger}
}

// Execute возвращает созданный и сохранённый заказ.
func (uc *CreateOrder) Execute(cmd CreateOrderCommand) (*domain.Order, error) {
	order, err := domain.NewOrder(cmd.ProductIDs, cmd.TotalPrice)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(order); err != nil {
		uc.logger.WithError(err).Error("failed to save order")
		return nil, domain.NewPersistenceError("Erreur lors de la création de la commande", err)
	}

	return order, nil
}
