package create_vehicle_type

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	got  *models.VehicleTypeRequest
	resp *models.VehicleTypeResponse
	err  error
}

func (f *fakeService) CreateVehicleType(_ context.Context, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"id":"minibus","name":"Minibus","minPassengers":4,"maxPassengers":16}`

func post(svc *fakeService, payload string) int {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/admin/vehicle-types", strings.NewReader(payload)))
	return w.Code
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.VehicleTypeResponse{ID: "minibus", MinPassengers: 4, MaxPassengers: 16}}
	require.Equal(t, http.StatusCreated, post(svc, body))
	assert.Equal(t, 16, svc.got.MaxPassengers)

	assert.Equal(t, http.StatusBadRequest, post(&fakeService{}, `{`))
	assert.Equal(t, http.StatusBadRequest, post(&fakeService{err: catalog.ErrInvalidInput}, body))
	assert.Equal(t, http.StatusConflict, post(&fakeService{err: catalog.ErrAlreadyExists}, body))
	assert.Equal(t, http.StatusInternalServerError, post(&fakeService{err: errors.New("db")}, body))
}
