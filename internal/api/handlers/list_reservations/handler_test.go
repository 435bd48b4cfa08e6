package list_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/service/reservations"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	got  *models.ListReservationsRequest
	resp *models.ReservationListResponse
	err  error
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationListResponse{
		Reservations: []models.ReservationResponse{{ID: "r-1"}},
		Limit:        20,
		PageSize:     3,
		Matched:      1,
		SearchScope:  models.SearchScopePage,
	}}

	w := get(svc, "/api/admin/reservations?status=pending&limit=20&offset=40&q=Dupont")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.Equal(t, uint64(20), svc.got.Limit)
	assert.Equal(t, uint64(40), svc.got.Offset)
	assert.Equal(t, "Dupont", svc.got.Query)
	assert.Contains(t, w.Body.String(), `"searchScope":"page"`)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationListResponse{}}

	w := get(svc, "/api/admin/reservations")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Status)
	assert.Zero(t, svc.got.Limit)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/api/admin/reservations?limit=x").Code)
	assert.Equal(t, http.StatusBadRequest,
		get(&fakeService{err: reservations.ErrInvalidInput}, "/api/admin/reservations?status=lost").Code)
	assert.Equal(t, http.StatusInternalServerError,
		get(&fakeService{err: errors.New("db")}, "/api/admin/reservations").Code)
}
