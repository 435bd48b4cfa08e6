package push_subscribe

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

type NotificationService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
