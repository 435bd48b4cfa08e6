package change_reservation_status

import (
	"context"
	"errors"
	"fmt"
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
	gotID  string
	gotReq *models.ChangeStatusRequest
	resp   *models.ReservationResponse
	err    error
}

func (f *fakeService) ChangeStatus(_ context.Context, id string, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	f.gotID = id
	f.gotReq = req
	return f.resp, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/reservations/{reservationId}/status", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/admin/reservations/r-1/status", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationResponse{ID: "r-1", Status: "confirmed", Version: 3}}

	w := serve(svc, `{"status":"confirmed","version":2}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r-1", svc.gotID)
	assert.Equal(t, "confirmed", svc.gotReq.Status)
	assert.Equal(t, 2, svc.gotReq.Version)
	assert.Contains(t, w.Body.String(), `"version":3`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad body", body: `{"status":`, wantStatus: http.StatusBadRequest},
		{name: "unknown status", body: `{"status":"lost"}`, err: reservations.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"status":"confirmed"}`, err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "backward transition",
			body:       `{"status":"pending"}`,
			err:        fmt.Errorf("%w: confirmed -> pending", reservations.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
		},
		{name: "same status", body: `{"status":"pending"}`, err: reservations.ErrNoStatusChange, wantStatus: http.StatusConflict},
		{name: "stale version", body: `{"status":"confirmed","version":1}`, err: reservations.ErrStaleVersion, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"status":"confirmed"}`, err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(&fakeService{err: tt.err}, tt.body).Code)
		})
	}
}
