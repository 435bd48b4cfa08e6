package create_field

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

	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	gotService string
	gotReq     *models.FieldRequest
	resp       *models.FieldResponse
	err        error
}

func (f *fakeService) CreateField(_ context.Context, serviceID string, req *models.FieldRequest) (*models.FieldResponse, error) {
	f.gotService = serviceID
	f.gotReq = req
	return f.resp, f.err
}

const body = `{"fieldKey":"luggage","fieldType":"number","label":"Luggage","required":true,"min":0,"max":10,"fieldOrder":5}`

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/services/{serviceId}/fields", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/services/airport/fields", strings.NewReader(payload)))
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{resp: &models.FieldResponse{ID: "f-9", FieldKey: "luggage"}}

	w := serve(svc, body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "airport", svc.gotService)
	assert.Equal(t, "number", svc.gotReq.FieldType)
	require.NotNil(t, svc.gotReq.Max)
	assert.Equal(t, 10.0, *svc.gotReq.Max)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: catalog.ErrInvalidInput}, body).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrServiceNotFound}, body).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: catalog.ErrAlreadyExists}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}, body).Code)
}
