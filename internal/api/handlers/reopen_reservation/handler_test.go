package reopen_reservation

import (
	"context"
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
	gotReq *models.ChangeStatusRequest
	resp   *models.ReservationResponse
	err    error
}

func (f *fakeService) Reopen(_ context.Context, _ string, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/reservations/{reservationId}/reopen", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/reservations/r-1/reopen", strings.NewReader(body)))
	return w
}

func TestHandle_ReopenCancelled(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationResponse{ID: "r-1", Status: "pending", Version: 5}}

	w := serve(svc, `{"status":"pending","version":4}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", svc.gotReq.Status)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: reservations.ErrInvalidTransition}, `{"status":"completed"}`).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: reservations.ErrStaleVersion}, `{"status":"pending"}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reservations.ErrReservationNotFound}, `{"status":"pending"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `nope`).Code)
}
