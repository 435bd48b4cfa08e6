package contacts

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	List(ctx context.Context, limit, offset uint64) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
