package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// Результаты поиска для метрик
const (
	LookupHit       = "hit"
	LookupMiss      = "miss"
	LookupDuplicate = "duplicate"
	LookupError     = "error"
	LookupSkipped   = "incomplete_key"
)

// Resolution найденная цена. nil вместо Resolution означает, что нужна ручная оценка
type Resolution struct {
	Price float64
	// Duplicate = true, если ключу соответствует больше одной строки
	// (взята самая свежая по created_at DESC, id DESC)
	Duplicate bool
}

// Resolver ищет фиксированную цену в БД. Всегда читает последнее закоммиченное значение
type Resolver struct {
	repo    LookupRepository
	metrics Metrics
	logger  Logger
}

// NewResolver создает резолвер цен; metrics может быть nil
func NewResolver(repo LookupRepository, metrics Metrics, logger Logger) *Resolver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Resolver{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// ResolvePrice возвращает цену для ключа или nil, если цены нет.
// Неполный ключ сразу дает nil без обращения к БД
func (r *Resolver) ResolvePrice(ctx context.Context, key domain.PricingKey) (*Resolution, error) {
	if !key.IsComplete() {
		r.metrics.IncPricingLookup(LookupSkipped)
		return nil, nil
	}

	rows, err := r.repo.FindByKey(ctx, key)
	if err != nil {
		r.metrics.IncPricingLookup(LookupError)
		r.logger.Error("ResolvePrice: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: ResolvePrice - repository error: %v", ErrInternal, err)
	}

	switch len(rows) {
	case 0:
		r.metrics.IncPricingLookup(LookupMiss)
		return nil, nil
	case 1:
		r.metrics.IncPricingLookup(LookupHit)
		return &Resolution{Price: rows[0].Price}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	r.metrics.IncPricingLookup(LookupDuplicate)
	r.metrics.IncPricingIntegrityFault()
	r.logger.Error("ResolvePrice: integrity fault, %d pricing rows for key=%s ids=%v, using id=%s",
		len(rows), key, ids, rows[0].ID)

	return &Resolution{Price: rows[0].Price, Duplicate: true}, nil
}
