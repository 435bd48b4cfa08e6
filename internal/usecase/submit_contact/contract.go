package submit_contact

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
}

// MailSender отправка письма операторам
type MailSender interface {
	Send(ctx context.Context, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
