package create_reservation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	notifyModels "github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

type fakeCatalog struct {
	services     map[string]*domain.Service
	fields       []domain.ServiceField
	vehicleTypes map[string]*domain.VehicleType
	locations    []domain.Location
}

func (f *fakeCatalog) GetService(_ context.Context, id string) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeCatalog) ListFields(_ context.Context, serviceID string) ([]domain.ServiceField, error) {
	var result []domain.ServiceField
	for _, fl := range f.fields {
		if fl.ServiceID == serviceID {
			result = append(result, fl)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetVehicleType(_ context.Context, id string) (*domain.VehicleType, error) {
	v, ok := f.vehicleTypes[id]
	if !ok {
		return nil, catalogRepo.ErrVehicleTypeNotFound
	}
	return v, nil
}

func (f *fakeCatalog) ListLocations(context.Context) ([]domain.Location, error) {
	return f.locations, nil
}

type fakeClients struct {
	byEmail map[string]*domain.Client
	created int
	updated int
}

func (f *fakeClients) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	for k, c := range f.byEmail {
		if strings.EqualFold(k, email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	f.created++
	f.byEmail[c.Email] = c
	return c, nil
}

func (f *fakeClients) UpdateContacts(_ context.Context, c *domain.Client) error {
	f.updated++
	f.byEmail[c.Email] = c
	return nil
}

type fakeReservations struct {
	created []*domain.Reservation
	err     error
}

func (f *fakeReservations) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, r)
	return r, nil
}

type fakeLookup struct {
	rows []*domain.ServiceVehiclePricing
}

func (f *fakeLookup) FindByKey(_ context.Context, key domain.PricingKey) ([]*domain.ServiceVehiclePricing, error) {
	var result []*domain.ServiceVehiclePricing
	for _, r := range f.rows {
		if r.Key() == key {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []*notifyModels.ReservationNotice
}

func (f *fakeNotifier) NotifyReservationCreated(_ context.Context, n *notifyModels.ReservationNotice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
}

type fakeMetrics struct {
	created map[string]int
}

func (m *fakeMetrics) IncReservationCreated(status string) { m.created[status]++ }

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }
