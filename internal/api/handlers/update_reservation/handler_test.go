package update_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/service/reservations"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	gotReq *models.UpdateReservationRequest
	resp   *models.ReservationResponse
	err    error
}

func (f *fakeService) Update(_ context.Context, _ string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/reservations/{reservationId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/admin/reservations/r-1", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationResponse{ID: "r-1", Version: 2}}

	w := serve(svc, `{"version":1,"totalPrice":120,"passengers":3}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotReq.TotalPrice)
	assert.Equal(t, 120.0, *svc.gotReq.TotalPrice)
	require.NotNil(t, svc.gotReq.Passengers)
	assert.Equal(t, 3, *svc.gotReq.Passengers)
	assert.Nil(t, svc.gotReq.Date)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"version":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: reservations.ErrInvalidInput}, `{"version":1}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reservations.ErrReservationNotFound}, `{"version":1,"notes":"x"}`).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: reservations.ErrStaleVersion}, `{"version":1,"notes":"x"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}, `{"version":1,"notes":"x"}`).Code)
}
