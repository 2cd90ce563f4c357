package domain

import "errors"

// ValidationError сигнализирует о нарушении бизнес-правила входными данными.
// Сообщение фиксировано за конкретным правилом и отдаётся клиенту как есть.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError создаёт ошибку валидации с фиксированным сообщением.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// NotFoundError сигнализирует об отсутствии запрошенной сущности.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

// NewNotFoundError создаёт ошибку отсутствия сущности.
func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{msg: msg}
}

// PersistenceError скрывает детали сбоя хранилища за фиксированным сообщением.
// Первопричина сохраняется для логов через Unwrap, но не попадает в Error().
type PersistenceError struct {
	msg   string
	cause error
}

func (e *PersistenceError) Error() string {
	return e.msg
}

func (e *PersistenceError) Unwrap() error {
	return e.cause
}

// NewPersistenceError оборачивает ошибку хранилища в фиксированное сообщение.
func NewPersistenceError(msg string, cause error) *PersistenceError {
	return &PersistenceError{msg: msg, cause: cause}
}

var (
	// Ошибка слишком короткого названия товара (< 3 символов).
	ErrTitleTooShort = NewValidationError("titre trop court")
	// Ошибка неположительной цены товара.
	ErrPriceTooLow = NewValidationError("le prix doit être supérieur à 0")
	// Ошибка цены товара, достигшей верхней границы.
	ErrPriceTooHigh = NewValidationError("le prix doit être inférieur à 10000")
	// Ошибка пустого списка товаров в заказе.
	ErrOrderEmpty = NewValidationError("Une commande doit contenir au moins 1 produit")
	// Ошибка превышения лимита товаров в заказе.
	ErrOrderTooManyProducts = NewValidationError("Une commande ne peut contenir plus de 5 produits")
	// Ошибка итоговой суммы заказа ниже минимума.
	ErrOrderTotalTooLow = NewValidationError("Le prix total doit être supérieur ou égal à 2€")
	// Ошибка итоговой суммы заказа выше максимума.
	ErrOrderTotalTooHigh = NewValidationError("Le prix total doit être inférieur ou égal à 500€")
	// ErrProductNotFound возвращается, если товар не найден в репозитории.
	ErrProductNotFound = NewNotFoundError("Product not found")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsValidation проверяет, является ли ошибка нарушением бизнес-правила.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsPersistence проверяет, является ли ошибка сбоем хранилища.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
