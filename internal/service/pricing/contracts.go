package pricing

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/infra/cache/pricecache"
)

// LookupRepository поиск строк цен по ключу
type LookupRepository interface {
	FindByKey(ctx context.Context, key domain.PricingKey) ([]*domain.ServiceVehiclePricing, error)
}

// PricingRepository интерфейс репозитория цен для админки
type PricingRepository interface {
	LookupRepository
	GetByID(ctx context.Context, id string) (*domain.ServiceVehiclePricing, error)
	List(ctx context.Context, filter domain.PricingFilter) ([]*domain.ServiceVehiclePricing, error)
	Create(ctx context.Context, p *domain.ServiceVehiclePricing) error
	Update(ctx context.Context, p *domain.ServiceVehiclePricing) error
	Delete(ctx context.Context, id string) error
	ListConflicts(ctx context.Context) ([]domain.PricingConflict, error)
}

// PriceResolver источник цены по ключу
type PriceResolver interface {
	ResolvePrice(ctx context.Context, key domain.PricingKey) (*Resolution, error)
}

// PriceCache хранилище закэшированных результатов поиска
type PriceCache interface {
	Get(ctx context.Context, key string) (pricecache.Entry, bool, error)
	Set(ctx context.Context, key string, entry pricecache.Entry) error
	Flush(ctx context.Context) error
}

// CacheInvalidator сбрасывает кэш цен после изменений в админке
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики поиска цен
type Metrics interface {
	IncPricingLookup(result string)
	IncPricingIntegrityFault()
	IncPricingCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncPricingLookup(string)   {}
func (noopMetrics) IncPricingIntegrityFault() {}
func (noopMetrics) IncPricingCache(string)    {}
