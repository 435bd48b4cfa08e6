package list_pricing_conflicts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	resp *models.ConflictListResponse
	err  error
}

func (f *fakeService) ListConflicts(context.Context) (*models.ConflictListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.ConflictListResponse{Conflicts: []models.ConflictResponse{{
		ServiceID:  "airport",
		Count:      2,
		PricingIDs: []string{"p-1", "p-2"},
	}}}}

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/admin/pricing/conflicts", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pricingIds":["p-1","p-2"]`)

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db")}, logger.Nop()).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/admin/pricing/conflicts", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
