package update_field

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
	gotService, gotField string
	resp                 *models.FieldResponse
	err                  error
}

func (f *fakeService) UpdateField(_ context.Context, serviceID, fieldID string, _ *models.FieldRequest) (*models.FieldResponse, error) {
	f.gotService, f.gotField = serviceID, fieldID
	return f.resp, f.err
}

const body = `{"fieldKey":"flightNumber","fieldType":"text","label":"Flight number","required":false,"fieldOrder":1}`

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/services/{serviceId}/fields/{fieldId}", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/admin/services/airport/fields/f-1", strings.NewReader(payload)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.FieldResponse{ID: "f-1"}}
	require.Equal(t, http.StatusOK, serve(svc, body).Code)
	assert.Equal(t, "airport", svc.gotService)
	assert.Equal(t, "f-1", svc.gotField)

	tests := map[error]int{
		catalog.ErrInvalidInput:    http.StatusBadRequest,
		catalog.ErrServiceNotFound: http.StatusNotFound,
		catalog.ErrFieldNotFound:   http.StatusNotFound,
		catalog.ErrAlreadyExists:   http.StatusConflict,
		errors.New("db"):           http.StatusInternalServerError,
	}
	for err, want := range tests {
		assert.Equal(t, want, serve(&fakeService{err: err}, body).Code, err.Error())
	}
}
