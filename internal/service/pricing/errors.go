package pricing

import "errors"

var (
	// ErrPricingNotFound возвращается, когда строка цены не найдена
	ErrPricingNotFound = errors.New("pricing: pricing row not found")

	// ErrPricingConflict возвращается, когда для ключа уже есть другая строка цены
	ErrPricingConflict = errors.New("pricing: price for this key already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
