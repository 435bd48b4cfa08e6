package push_unsubscribe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TransferService/internal/service/notifications"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeService struct {
	got *models.UnsubscribeRequest
	err error
}

func (f *fakeService) Unsubscribe(_ context.Context, req *models.UnsubscribeRequest) error {
	f.got = req
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "deleted", body: `{"endpoint":"https://push.example.com/abc"}`, wantStatus: http.StatusNoContent},
		{name: "bad body", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "missing endpoint", body: `{}`, err: notifications.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown endpoint", body: `{"endpoint":"https://x"}`, err: notifications.ErrSubscriptionNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: `{"endpoint":"https://x"}`, err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.Nop()).
				Handle(w, httptest.NewRequest(http.MethodPost, "/api/push/unsubscribe", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
