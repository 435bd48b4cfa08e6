package catalog

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListServices(ctx context.Context, onlyAvailable bool) ([]*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)

	ListFields(ctx context.Context, serviceID string) ([]domain.ServiceField, error)
	CreateField(ctx context.Context, f *domain.ServiceField) error
	UpdateField(ctx context.Context, f *domain.ServiceField) error
	DeleteField(ctx context.Context, serviceID, fieldID string) error

	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, l *domain.Location) error

	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	CreateVehicleType(ctx context.Context, v *domain.VehicleType) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
