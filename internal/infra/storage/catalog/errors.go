package catalog

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrFieldNotFound возвращается, когда поле услуги не найдено
	ErrFieldNotFound = errors.New("catalog.repository: service field not found")

	// ErrVehicleTypeNotFound возвращается, когда тип автомобиля не найден
	ErrVehicleTypeNotFound = errors.New("catalog.repository: vehicle type not found")

	// ErrAlreadyExists возвращается при нарушении уникальности (ключ поля, флаги pickup/destination, id)
	ErrAlreadyExists = errors.New("catalog.repository: record already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
