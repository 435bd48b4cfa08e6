package submit_contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitContact "github.com/m04kA/SMC-TransferService/internal/usecase/submit_contact"
	"github.com/m04kA/SMC-TransferService/internal/validation"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeUseCase struct {
	got  *submitContact.Request
	resp *submitContact.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitContact.Request) (*submitContact.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"firstName":"Anna","lastName":"Martin","email":"anna@example.com","message":"Do you serve Orly?"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &submitContact.Response{ID: "m-1", FirstName: "Anna", Message: "Do you serve Orly?"}}
	h := NewHandler(uc, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "anna@example.com", uc.got.Email)

	var resp submitContact.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "m-1", resp.ID)
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: validation.FieldErrors{{Field: "email", Message: "invalid email address"}}}
	h := NewHandler(uc, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"email"`)
}

func TestHandle_BadBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitContact.ErrInternal}, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
