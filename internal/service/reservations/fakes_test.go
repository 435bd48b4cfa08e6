package reservations

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/reservation"
)

type fakeReservations struct {
	rows    map[string]*domain.Reservation
	order   []string
	err     error
	deleted []string
}

func newFakeReservations(rows ...*domain.Reservation) *fakeReservations {
	f := &fakeReservations{rows: map[string]*domain.Reservation{}}
	for _, r := range rows {
		f.rows[r.ID] = r
		f.order = append(f.order, r.ID)
	}
	return f
}

func (f *fakeReservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Reservation
	for _, id := range f.order {
		r := f.rows[id]
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		cp := *r
		result = append(result, &cp)
		if uint64(len(result)) == filter.Limit {
			break
		}
	}
	return result, nil
}

func (f *fakeReservations) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, expectedVersion int) (int, error) {
	r, ok := f.rows[id]
	if !ok || r.Version != expectedVersion {
		return 0, reservationRepo.ErrStaleVersion
	}
	r.Status = status
	r.Version++
	return r.Version, nil
}

func (f *fakeReservations) Update(_ context.Context, res *domain.Reservation) error {
	r, ok := f.rows[res.ID]
	if !ok || r.Version != res.Version {
		return reservationRepo.ErrStaleVersion
	}
	res.Version++
	cp := *res
	f.rows[res.ID] = &cp
	return nil
}

func (f *fakeReservations) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeClients struct {
	clients map[string]*domain.Client
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClients) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Client, error) {
	result := map[string]*domain.Client{}
	for _, id := range ids {
		if c, ok := f.clients[id]; ok {
			result[id] = c
		}
	}
	return result, nil
}
