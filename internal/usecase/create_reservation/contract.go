package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
	ListFields(ctx context.Context, serviceID string) ([]domain.ServiceField, error)
	GetVehicleType(ctx context.Context, id string) (*domain.VehicleType, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	UpdateContacts(ctx context.Context, c *domain.Client) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// PriceResolver источник цены (обычно CachedResolver)
type PriceResolver interface {
	ResolvePrice(ctx context.Context, key domain.PricingKey) (*pricing.Resolution, error)
}

// Notifier уведомляет операторов о новом бронировании
type Notifier interface {
	NotifyReservationCreated(ctx context.Context, n *models.ReservationNotice)
}

// Metrics счетчик созданных бронирований
type Metrics interface {
	IncReservationCreated(status string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) IncReservationCreated(string) {}
