package webpush

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// Config параметры VAPID
type Config struct {
	PublicKey  string
	PrivateKey string
	Subject    string // mailto: или https: контакт отправителя
	TTL        int    // секунды хранения сообщения на push-сервисе
}

// Client отправляет зашифрованные Web Push сообщения
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента Web Push
func NewClient(cfg Config, timeout time.Duration) *Client {
	if cfg.TTL <= 0 {
		cfg.TTL = 86400
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled true, если заданы оба VAPID ключа
func (c *Client) Enabled() bool {
	return c.cfg.PublicKey != "" && c.cfg.PrivateKey != ""
}

// PublicKey VAPID ключ для подписки в браузере
func (c *Client) PublicKey() string {
	return c.cfg.PublicKey
}

// Send отправляет payload одной подписке
func (c *Client) Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpushgo.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      c.cfg.Subject,
		VAPIDPublicKey:  c.cfg.PublicKey,
		VAPIDPrivateKey: c.cfg.PrivateKey,
		TTL:             c.cfg.TTL,
		Urgency:         webpushgo.UrgencyNormal,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to send notification: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDelivery, resp.StatusCode, string(body))
	}
}

// GenerateKeys создает новую пару VAPID ключей (privateKey, publicKey)
func GenerateKeys() (string, string, error) {
	return webpushgo.GenerateVAPIDKeys()
}
