package push_public_key

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeKeys struct {
	key string
}

func (f fakeKeys) Enabled() bool     { return f.key != "" }
func (f fakeKeys) PublicKey() string { return f.key }

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakeKeys{key: "BEl62i"}, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/push/public-key", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"publicKey":"BEl62i"}`, w.Body.String())

	w = httptest.NewRecorder()
	NewHandler(fakeKeys{}, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/push/public-key", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
