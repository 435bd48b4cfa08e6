package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
	"github.com/m04kA/SMC-TransferService/pkg/ptr"
)

func reservation(id, clientID string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:                  id,
		ClientID:            clientID,
		ServiceID:           "airport-transfers",
		VehicleTypeID:       "car",
		Date:                "2025-06-01",
		Time:                "10:00",
		PickupLocation:      "cdg",
		DestinationLocation: ptr.Ptr("Hotel Lutetia, Paris"),
		Passengers:          2,
		Status:              status,
		Version:             1,
	}
}

func newTestService(policy DeletePolicy, rows ...*domain.Reservation) (*Service, *fakeReservations) {
	repo := newFakeReservations(rows...)
	clients := &fakeClients{clients: map[string]*domain.Client{
		"c-1": {ID: "c-1", FirstName: "Marie", LastName: "Curie", Email: "marie@example.com"},
		"c-2": {ID: "c-2", FirstName: "John", LastName: "Smith", Email: "john@example.com"},
	}}
	return NewService(repo, clients, policy, logger.Nop()), repo
}

func TestService_List_SearchWithinPage(t *testing.T) {
	s, _ := newTestService(DeletePolicyCancel,
		reservation("r-1", "c-1", domain.StatusPending),
		reservation("r-2", "c-2", domain.StatusPending),
		reservation("r-3", "c-2", domain.StatusConfirmed),
	)

	resp, err := s.List(context.Background(), &models.ListReservationsRequest{Query: "  CURIE "})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.PageSize)
	assert.Equal(t, 1, resp.Matched)
	assert.Equal(t, models.SearchScopePage, resp.SearchScope)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "r-1", resp.Reservations[0].ID)
	require.NotNil(t, resp.Reservations[0].Client)
	assert.Equal(t, "marie@example.com", resp.Reservations[0].Client.Email)
	assert.Equal(t, uint64(domain.DefaultPageLimit), resp.Limit)
}

func TestService_List_MatchOutsidePageIsNotFound(t *testing.T) {
	s, _ := newTestService(DeletePolicyCancel,
		reservation("r-1", "c-1", domain.StatusPending),
		reservation("r-2", "c-2", domain.StatusPending),
	)

	resp, err := s.List(context.Background(), &models.ListReservationsRequest{Limit: 1, Query: "john"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PageSize)
	assert.Zero(t, resp.Matched)
	assert.Empty(t, resp.Reservations)
}

func TestService_List_StatusFilter(t *testing.T) {
	s, _ := newTestService(DeletePolicyCancel,
		reservation("r-1", "c-1", domain.StatusPending),
		reservation("r-2", "c-2", domain.StatusConfirmed),
	)

	resp, err := s.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "r-2", resp.Reservations[0].ID)

	_, err = s.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID(t *testing.T) {
	s, _ := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", domain.StatusPending))

	resp, err := s.GetByID(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Marie", resp.Client.FirstName)
	assert.NotNil(t, resp.ServiceSubData)

	_, err = s.GetByID(context.Background(), "r-404")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	s, repo := newTestService(DeletePolicyCancel)
	repo.err = errors.New("connection reset")

	_, err := s.GetByID(context.Background(), "r-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		to      string
		version int
		wantErr error
	}{
		{name: "forward", from: domain.StatusPending, to: "quote_sent", version: 1},
		{name: "skip forward", from: domain.StatusQuoteRequested, to: "confirmed", version: 1},
		{name: "cancel", from: domain.StatusQuoteAccepted, to: "cancelled", version: 1},
		{name: "backward", from: domain.StatusConfirmed, to: "pending", version: 1, wantErr: ErrInvalidTransition},
		{name: "from terminal", from: domain.StatusCompleted, to: "cancelled", version: 1, wantErr: ErrInvalidTransition},
		{name: "same status", from: domain.StatusPending, to: "pending", version: 1, wantErr: ErrNoStatusChange},
		{name: "unknown status", from: domain.StatusPending, to: "archived", version: 1, wantErr: ErrInvalidInput},
		{name: "stale version", from: domain.StatusPending, to: "confirmed", version: 7, wantErr: ErrStaleVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", tt.from))

			resp, err := s.ChangeStatus(context.Background(), "r-1", &models.ChangeStatusRequest{Status: tt.to, Version: tt.version})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.rows["r-1"].Status)
				assert.Equal(t, 1, repo.rows["r-1"].Version)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, 2, resp.Version)
			assert.Equal(t, domain.ReservationStatus(tt.to), repo.rows["r-1"].Status)
		})
	}
}

func TestService_Reopen(t *testing.T) {
	s, repo := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", domain.StatusCancelled))

	resp, err := s.Reopen(context.Background(), "r-1", &models.ChangeStatusRequest{Status: "pending", Version: 1})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, domain.StatusPending, repo.rows["r-1"].Status)

	_, err = s.Reopen(context.Background(), "r-1", &models.ChangeStatusRequest{Status: "confirmed", Version: 2})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Reopen(context.Background(), "r-1", &models.ChangeStatusRequest{Status: "completed", Version: 2})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Update(t *testing.T) {
	s, repo := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", domain.StatusQuoteRequested))

	resp, err := s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{
		Version:    1,
		TotalPrice: ptr.Ptr(120.0),
		Passengers: ptr.Ptr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 120.0, *resp.TotalPrice)
	assert.Equal(t, 3, resp.Passengers)
	assert.Equal(t, "quote_requested", resp.Status)
	assert.Equal(t, 2, repo.rows["r-1"].Version)

	_, err = s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{Version: 1, Passengers: ptr.Ptr(4)})
	assert.ErrorIs(t, err, ErrStaleVersion)
}

func TestService_Update_InvalidInput(t *testing.T) {
	s, _ := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", domain.StatusPending))

	_, err := s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{Version: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{Version: 1, Passengers: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{Version: 1, TotalPrice: ptr.Ptr(-5.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_SameLocationRejected(t *testing.T) {
	s, repo := newTestService(DeletePolicyCancel, reservation("r-1", "c-1", domain.StatusPending))

	_, err := s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{
		Version:        1,
		PickupLocation: ptr.Ptr("  HOTEL Lutetia, Paris "),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Update(context.Background(), "r-1", &models.UpdateReservationRequest{
		Version:             1,
		DestinationLocation: ptr.Ptr("CDG"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 1, repo.rows["r-1"].Version)
	assert.Equal(t, "cdg", repo.rows["r-1"].PickupLocation)
}

func TestService_Delete_CancelPolicy(t *testing.T) {
	s, repo := newTestService(DeletePolicy("unknown"),
		reservation("r-1", "c-1", domain.StatusConfirmed),
		reservation("r-2", "c-1", domain.StatusCompleted),
	)

	require.NoError(t, s.Delete(context.Background(), "r-1"))
	assert.Equal(t, domain.StatusCancelled, repo.rows["r-1"].Status)
	assert.Empty(t, repo.deleted)

	// повторная отмена
	require.NoError(t, s.Delete(context.Background(), "r-1"))

	assert.ErrorIs(t, s.Delete(context.Background(), "r-2"), ErrInvalidTransition)
	assert.ErrorIs(t, s.Delete(context.Background(), "r-404"), ErrReservationNotFound)
}

func TestService_Delete_DeletePolicy(t *testing.T) {
	s, repo := newTestService(DeletePolicyDelete, reservation("r-1", "c-1", domain.StatusCompleted))

	require.NoError(t, s.Delete(context.Background(), "r-1"))
	assert.Equal(t, []string{"r-1"}, repo.deleted)
	assert.ErrorIs(t, s.Delete(context.Background(), "r-1"), ErrReservationNotFound)
}
