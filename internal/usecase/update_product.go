package usecase

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// UpdateProductCommand — плоская команда от транспортного слоя.
type UpdateProductCommand struct {
	ID          int64
	Title       string
	Description string
	Price       float64
}

// UpdateProduct загружает товар, изменяет его и сохраняет.
type UpdateProduct struct {
	repo   domain.UpdateProductRepository
	logger *log.Entry
}

// NewUpdateProduct конструирует use case с его зависимостями.
func NewUpdateProduct(repo domain.UpdateProductRepository, logger *log.Entry) *UpdateProduct {
	if logger == nil {
		logger = log.WithField("component", "update-product")
	}
	return &UpdateProduct{repo: repo, logger: logger}
}

// Execute возвращает изменённый товар. Отсутствующий товар — NotFoundError,
// нарушение бизнес-правил — ValidationError без изменений, сбой хранилища —
// PersistenceError с фиксированным сообщением.
func (uc *UpdateProduct) Execute(cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := uc.repo.FindOneByID(cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		uc.logger.WithError(err).WithField("product_id", cmd.ID).Error("failed to load product")
		return nil, domain.NewPersistenceError("Error updating product", err)
	}

	if err := product.Update(cmd.Title, cmd.Description, cmd.Price); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(product); err != nil {
		uc.logger.WithError(err).WithField("product_id", cmd.ID).Error("failed to save product")
		return nil, domain.NewPersistenceError("Error updating product", err)
	}

	return product, nil
}
