package push_unsubscribe

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

type NotificationService interface {
	Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
