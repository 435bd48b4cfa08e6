package delete_pricing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	got string
	err error
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.got = id
	return f.err
}

func serve(svc *fakeService) int {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/pricing/{pricingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/pricing/p-1", nil))
	return w.Code
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	assert.Equal(t, http.StatusNoContent, serve(svc))
	assert.Equal(t, "p-1", svc.got)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: pricing.ErrPricingNotFound}))
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}))
}
