package pricing

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/pricing"
)

type fakeRepo struct {
	mu      sync.Mutex
	rows    []*domain.ServiceVehiclePricing
	err     error
	lookups int
}

func (f *fakeRepo) FindByKey(_ context.Context, key domain.PricingKey) ([]*domain.ServiceVehiclePricing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.ServiceVehiclePricing
	for _, r := range f.rows {
		if r.Key() == key {
			cp := *r
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.ServiceVehiclePricing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, pricingRepo.ErrPricingNotFound
}

func (f *fakeRepo) List(_ context.Context, _ domain.PricingFilter) ([]*domain.ServiceVehiclePricing, error) {
	return f.rows, f.err
}

func (f *fakeRepo) Create(_ context.Context, p *domain.ServiceVehiclePricing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.rows = append([]*domain.ServiceVehiclePricing{&cp}, f.rows...)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.ServiceVehiclePricing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == p.ID {
			cp := *p
			f.rows[i] = &cp
			return nil
		}
	}
	return pricingRepo.ErrPricingNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return pricingRepo.ErrPricingNotFound
}

func (f *fakeRepo) ListConflicts(_ context.Context) ([]domain.PricingConflict, error) {
	return nil, f.err
}

type fakeMetrics struct {
	lookups map[string]int
	cache   map[string]int
	faults  int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{lookups: map[string]int{}, cache: map[string]int{}}
}

func (m *fakeMetrics) IncPricingLookup(result string) { m.lookups[result]++ }
func (m *fakeMetrics) IncPricingIntegrityFault()      { m.faults++ }
func (m *fakeMetrics) IncPricingCache(result string)  { m.cache[result]++ }

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return nil
}
