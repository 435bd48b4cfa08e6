package list_contact_messages

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/contacts"
)

type ContactService interface {
	List(ctx context.Context, limit, offset uint64) (*contacts.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
