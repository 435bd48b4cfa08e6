package list_vehicle_types

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	resp *models.VehicleTypeListResponse
	err  error
}

func (f *fakeService) ListVehicleTypes(context.Context) (*models.VehicleTypeListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeService{resp: &models.VehicleTypeListResponse{VehicleTypes: []models.VehicleTypeResponse{
			{ID: "van", Name: "Van", MinPassengers: 1, MaxPassengers: 7},
		}}}
		w := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/vehicle-types", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"maxPassengers":7`)
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHandler(&fakeService{err: errors.New("boom")}, logger.Nop()).
			Handle(w, httptest.NewRequest(http.MethodGet, "/api/vehicle-types", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
