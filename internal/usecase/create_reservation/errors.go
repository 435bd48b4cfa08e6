package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или недоступна
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrVehicleTypeNotFound возвращается, когда тип автомобиля не найден
	ErrVehicleTypeNotFound = errors.New("create_reservation: vehicle type not found")

	// ErrMisconfiguredService возвращается, когда схема полей услуги некорректна
	ErrMisconfiguredService = errors.New("create_reservation: service field schema is misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
