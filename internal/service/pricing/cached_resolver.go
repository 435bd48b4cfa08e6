package pricing

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/infra/cache/pricecache"
)

// Результаты обращения к кэшу для метрик
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// CachedResolver кэширует результаты резолвера, включая отсутствие цены.
// Ошибки кэша не фатальны: запрос уходит в резолвер напрямую
type CachedResolver struct {
	inner   PriceResolver
	cache   PriceCache
	metrics Metrics
	logger  Logger
}

// NewCachedResolver оборачивает резолвер кэшем; metrics может быть nil
func NewCachedResolver(inner PriceResolver, cache PriceCache, metrics Metrics, logger Logger) *CachedResolver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &CachedResolver{
		inner:   inner,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *CachedResolver) ResolvePrice(ctx context.Context, key domain.PricingKey) (*Resolution, error) {
	if !key.IsComplete() {
		return nil, nil
	}

	cacheKey := key.String()

	entry, found, err := c.cache.Get(ctx, cacheKey)
	switch {
	case err != nil:
		c.metrics.IncPricingCache(CacheError)
		c.logger.Warn("ResolvePrice: cache read failed for key=%s: %v", key, err)
	case found:
		c.metrics.IncPricingCache(CacheHit)
		return fromEntry(entry), nil
	default:
		c.metrics.IncPricingCache(CacheMiss)
	}

	res, err := c.inner.ResolvePrice(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, cacheKey, toEntry(res)); err != nil {
		c.logger.Warn("ResolvePrice: cache write failed for key=%s: %v", key, err)
	}

	return res, nil
}

// Invalidate сбрасывает весь кэш цен
func (c *CachedResolver) Invalidate(ctx context.Context) error {
	return c.cache.Flush(ctx)
}

func toEntry(res *Resolution) pricecache.Entry {
	if res == nil {
		return pricecache.Entry{}
	}
	price := res.Price
	return pricecache.Entry{Price: &price, Duplicate: res.Duplicate}
}

func fromEntry(e pricecache.Entry) *Resolution {
	if e.Price == nil {
		return nil
	}
	return &Resolution{Price: *e.Price, Duplicate: e.Duplicate}
}
