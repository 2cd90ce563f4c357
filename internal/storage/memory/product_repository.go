package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация репозиториев товара.
// Закрывает контракты и создания, и изменения, поэтому используется обоими use case.
type productRepositoryInMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Product
}

// ProductRepository совмещает контракты создания и изменения товара.
type ProductRepository interface {
	domain.CreateProductRepository
	domain.UpdateProductRepository
	// All возвращает все сохранённые товары (для тестов и отладки).
	All() []domain.Product
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() ProductRepository {
	return &productRepositoryInMemory{
		nextID: 1,
		items:  make(map[int64]domain.Product),
	}
}

// Save назначает ID при первом сохранении и перезаписывает запись при повторном.
func (r *productRepositoryInMemory) Save(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items[product.ID] = *product
	return nil
}

// FindOneByID возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepositoryInMemory) FindOneByID(id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

// All возвращает копии всех сохранённых товаров.
func (r *productRepositoryInMemory) All() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		result = append(result, product)
	}
	return result
}

var (
	_ domain.CreateProductRepository = (*productRepositoryInMemory)(nil)
	_ domain.UpdateProductRepository = (*productRepositoryInMemory)(nil)
)
