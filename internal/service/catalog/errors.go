package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или недоступна
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrFieldNotFound возвращается, когда поле услуги не найдено
	ErrFieldNotFound = errors.New("catalog: service field not found")

	// ErrAlreadyExists возвращается при дублировании id или ключа поля
	ErrAlreadyExists = errors.New("catalog: record already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
