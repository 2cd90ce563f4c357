package domain

import "unicode/utf8"

const (
	productTitleMinLen  = 3
	productPriceMinExcl = 0
	productPriceMaxExcl = 10000
)

// Product — товар каталога. Инварианты (длина названия, диапазон цены)
// проверяются при создании и при каждом изменении, поэтому живой экземпляр
// всегда валиден.
type Product struct {
	// ID назначается хранилищем при первом сохранении; 0 — ещё не сохранён.
	ID          int64
	Title       string
	Description string
	Price       float64
}

// NewProduct создаёт товар, проверяя бизнес-правила.
// Порядок проверок: сначала название, затем цена.
func NewProduct(title, description string, price float64) (*Product, error) {
	if err := validateProduct(title, price); err != nil {
		return nil, err
	}

	return &Product{
		Title:       title,
		Description: description,
		Price:       price,
	}, nil
}

// Update изменяет товар, повторно выполняя те же проверки.
// При ошибке валидации ни одно поле не меняется.
func (p *Product) Update(title, description string, price float64) error {
	if err := validateProduct(title, price); err != nil {
		return err
	}

	p.Title = title
	p.Description = description
	p.Price = price
	return nil
}

func validateProduct(title string, price float64) error {
	if utf8.RuneCountInString(title) < productTitleMinLen {
		return ErrTitleTooShort
	}
	if price <= productPriceMinExcl {
		return ErrPriceTooLow
	}
	if price >= productPriceMaxExcl {
		return ErrPriceTooHigh
	}
	return nil
}
