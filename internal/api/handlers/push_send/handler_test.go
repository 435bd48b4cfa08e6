package push_send

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/service/notifications"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	got  *models.SendRequest
	resp *models.PushReportResponse
	err  error
}

func (f *fakeService) Send(_ context.Context, req *models.SendRequest) (*models.PushReportResponse, error) {
	f.got = req
	return f.resp, f.err
}

func post(svc *fakeService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/admin/push/send", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.PushReportResponse{Sent: 3, Failed: 1, Pruned: 1}}

	w := post(svc, `{"title":"New booking","body":"CDG to Paris","url":"/admin"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New booking", svc.got.Title)
	assert.JSONEq(t, `{"sent":3,"failed":1,"pruned":1}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(&fakeService{}, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(&fakeService{err: notifications.ErrInvalidInput}, `{}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, post(&fakeService{err: notifications.ErrPushDisabled}, `{"title":"x"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(&fakeService{err: errors.New("db")}, `{"title":"x"}`).Code)
}
