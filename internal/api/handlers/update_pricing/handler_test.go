package update_pricing

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

	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	gotID string
	resp  *models.PricingResponse
	err   error
}

func (f *fakeService) Update(_ context.Context, id string, _ *models.PricingRequest) (*models.PricingResponse, error) {
	f.gotID = id
	return f.resp, f.err
}

const body = `{"serviceId":"airport","vehicleTypeId":"van","price":120}`

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/pricing/{pricingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/admin/pricing/p-1", strings.NewReader(payload)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.PricingResponse{ID: "p-1", Price: 120}}
	w := serve(svc, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p-1", svc.gotID)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `x`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: pricing.ErrInvalidInput}, body).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: pricing.ErrPricingNotFound}, body).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: pricing.ErrPricingConflict}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}, body).Code)
}
