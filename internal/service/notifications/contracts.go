package notifications

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория push-подписок
type SubscriptionRepository interface {
	Upsert(ctx context.Context, s *domain.PushSubscription) error
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	List(ctx context.Context) ([]*domain.PushSubscription, error)
}

// PushSender интерфейс клиента Web Push
type PushSender interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
}

// MailSender интерфейс отправки писем операторам
type MailSender interface {
	Send(ctx context.Context, subject, body string) error
}

// Metrics интерфейс метрик рассылки
type Metrics interface {
	AddPushDeliveries(result string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) AddPushDeliveries(string, int) {}
