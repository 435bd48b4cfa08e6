package submit_contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/validation"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
)

type fakeRepo struct {
	saved []*domain.ContactMessage
	err   error
}

func (f *fakeRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	m.CreatedAt = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	f.saved = append(f.saved, m)
	return m, nil
}

type fakeMail struct {
	mu     sync.Mutex
	bodies []string
}

func (f *fakeMail) Send(_ context.Context, _, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, body)
	return nil
}

func TestExecute(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMail{}
	uc := NewUseCase(repo, mail, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		FirstName: " John ",
		LastName:  "Smith",
		Email:     "john@example.com",
		Phone:     "+1 (555) 123-4567",
		Message:   "Do you do transfers to Versailles?",
	})
	require.NoError(t, err)
	uc.Wait()

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "John", resp.FirstName)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+15551234567", *resp.Phone)
	assert.False(t, resp.CreatedAt.IsZero())
	require.Len(t, repo.saved, 1)
	require.Len(t, mail.bodies, 1)
	assert.Contains(t, mail.bodies[0], "Versailles")
}

func TestExecute_PhoneOptional(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		FirstName: "John", LastName: "Smith", Email: "john@example.com", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Phone)
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{
		FirstName: "John", LastName: "  ", Email: "not-an-email", Phone: "123", Message: "",
	})

	var fieldErrs validation.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.True(t, fieldErrs.Has("lastName"))
	assert.True(t, fieldErrs.Has("email"))
	assert.True(t, fieldErrs.Has("phone"))
	assert.True(t, fieldErrs.Has("message"))
	assert.Empty(t, repo.saved)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{
		FirstName: "John", LastName: "Smith", Email: "john@example.com", Message: "Hello",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
