package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrStaleVersion возвращается, когда версия бронирования изменилась с момента чтения
	ErrStaleVersion = errors.New("reservation.repository: stale reservation version")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrEncodeSubData возвращается, когда serviceSubData не сериализуется в JSON
	ErrEncodeSubData = errors.New("reservation.repository: failed to encode service sub data")
)
