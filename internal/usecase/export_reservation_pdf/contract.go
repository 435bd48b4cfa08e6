package export_reservation_pdf

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/integrations/pdfrenderer"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
	ListFields(ctx context.Context, serviceID string) ([]domain.ServiceField, error)
	GetVehicleType(ctx context.Context, id string) (*domain.VehicleType, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// Renderer собирает PDF документ
type Renderer interface {
	Render(doc *pdfrenderer.ReservationDocument) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
