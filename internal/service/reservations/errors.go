package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("reservations: invalid status transition")

	// ErrNoStatusChange возвращается, когда запрошенный статус совпадает с текущим
	ErrNoStatusChange = errors.New("reservations: status is already set")

	// ErrStaleVersion возвращается, когда бронирование изменилось после чтения
	ErrStaleVersion = errors.New("reservations: reservation was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
