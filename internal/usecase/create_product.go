package usecase

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// CreateProductCommand — плоская команда от транспортного слоя.
type CreateProductCommand struct {
	Title       string
	Description string
	Price       float64
}

// CreateProduct создаёт товар: валидация в сущности, затем одно сохранение.
type CreateProduct struct {
	repo   domain.CreateProductRepository
	logger *log.Entry
}

// NewCreateProduct конструирует use case с его зависимостями.
func NewCreateProduct(repo domain.CreateProductRepository, logger *log.Entry) *CreateProduct {
	if logger == nil {
		logger = log.WithField("component", "create-product")
	}
	return &CreateProduct{repo: repo, logger: logger}
}

// Execute возвращает сохранённый товар с назначенным хранилищем ID.
// Ошибки валидации уходят вызывающему без изменений; сбой хранилища
// скрывается за фиксированным сообщением.
func (uc *CreateProduct) Execute(cmd CreateProductCommand) (*domain.Product, error) {
	product, err := domain.NewProduct(cmd.Title, cmd.Description, cmd.Price)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(product); err != nil {
		uc.logger.WithError(err).Error("failed to save product")
		return nil, domain.NewPersistenceError("Error creating product", err)
	}

	return product, nil
}
