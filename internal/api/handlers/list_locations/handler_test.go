package list_locations

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
	resp *models.LocationListResponse
	err  error
}

func (f *fakeService) ListLocations(context.Context) (*models.LocationListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeService{resp: &models.LocationListResponse{Locations: []models.LocationResponse{
			{ID: "cdg", Name: "Charles de Gaulle Airport", Type: "airport"},
		}}}
		w := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"locations":[{"id":"cdg","name":"Charles de Gaulle Airport","type":"airport"}]}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHandler(&fakeService{err: errors.New("boom")}, logger.Nop()).
			Handle(w, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
