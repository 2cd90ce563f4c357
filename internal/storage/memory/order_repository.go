package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация CreateOrderRepository.
type orderRepositoryInMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Order
}

// OrderRepository расширяет контракт создания заказа доступом на чтение для тестов.
type OrderRepository interface {
	domain.CreateOrderRepository
	// Get возвращает заказ по идентификатору, если он сохранён.
	Get(id int64) (domain.Order, bool)
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() OrderRepository {
	return &orderRepositoryInMemory{
		nextID: 1,
		items:  make(map[int64]domain.Order),
	}
}

// Save назначает ID при первом сохранении и перезаписывает запись при повторном.
func (r *orderRepositoryInMemory) Save(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}

	stored := *order
	// Копируем срез идентификаторов, чтобы запись не делила память с вызывающим.
	stored.ProductIDs = append([]int64(nil), order.ProductIDs...)
	r.items[order.ID] = stored
	return nil
}

// Get возвращает копию заказа по идентификатору.
func (r *orderRepositoryInMemory) Get(id int64) (domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, false
	}
	order.ProductIDs = append([]int64(nil), order.ProductIDs...)
	return order, true
}

var _ domain.CreateOrderRepository = (*orderRepositoryInMemory)(nil)
