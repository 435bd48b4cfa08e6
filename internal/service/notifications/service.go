package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/pushsubscription"
	"github.com/m04kA/SMC-TransferService/internal/integrations/webpush"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

// Результаты доставки для метрики push_deliveries_total
const (
	DeliverySent   = "sent"
	DeliveryFailed = "failed"
	DeliveryPruned = "pruned"
)

// DefaultConcurrency сколько подписок обрабатывается одновременно
const DefaultConcurrency = 8

// Service сервис уведомлений: Web Push подписчикам и письма операторам.
// push и mail могут быть nil, тогда соответствующий канал выключен
type Service struct {
	repo        SubscriptionRepository
	push        PushSender
	mail        MailSender
	metrics     Metrics
	concurrency int
	logger      Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	repo SubscriptionRepository,
	push PushSender,
	mail MailSender,
	metrics Metrics,
	concurrency int,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		repo:        repo,
		push:        push,
		mail:        mail,
		metrics:     metrics,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Subscribe сохраняет подписку браузера. Повторная подписка с тем же endpoint обновляет ключи
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriptionResponse, error) {
	sub := req.ToDomainSubscription()
	sub.Endpoint = strings.TrimSpace(sub.Endpoint)

	if u, err := url.Parse(sub.Endpoint); err != nil || u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: endpoint must be an https URL", ErrInvalidInput)
	}
	if sub.P256dh == "" || sub.Auth == "" {
		return nil, fmt.Errorf("%w: keys.p256dh and keys.auth are required", ErrInvalidInput)
	}

	sub.ID = uuid.NewString()
	if err := s.repo.Upsert(ctx, sub); err != nil {
		s.logger.Error("Subscribe: repository error: %v", err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: saved push subscription id=%s", sub.ID)
	return &models.SubscriptionResponse{ID: sub.ID, Endpoint: sub.Endpoint}, nil
}

// Unsubscribe удаляет подписку по endpoint
func (s *Service) Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error {
	endpoint := strings.TrimSpace(req.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}

	if err := s.repo.DeleteByEndpoint(ctx, endpoint); err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return ErrSubscriptionNotFound
		}
		s.logger.Error("Unsubscribe: repository error: %v", err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Send ручная рассылка из админки
func (s *Service) Send(ctx context.Context, req *models.SendRequest) (*models.PushReportResponse, error) {
	msg := req.ToDomainMessage()
	msg.Title = strings.TrimSpace(msg.Title)
	if msg.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	report, err := s.Broadcast(ctx, msg)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReport(report), nil
}

// Broadcast отправляет сообщение всем подписчикам.
// Ошибка одной подписки не прерывает рассылку, подписки с ответом 404/410 удаляются
func (s *Service) Broadcast(ctx context.Context, msg domain.PushMessage) (domain.PushReport, error) {
	var report domain.PushReport

	if s.push == nil {
		return report, ErrPushDisabled
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return report, fmt.Errorf("%w: Broadcast - encode payload: %v", ErrInternal, err)
	}

	subs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Broadcast: failed to list subscriptions: %v", err)
		return report, fmt.Errorf("%w: Broadcast - list subscriptions: %v", ErrInternal, err)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.concurrency)
	)
	skipped := 0
	for i, sub := range subs {
		if ctx.Err() == nil {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			// время вышло: оставшиеся подписки считаются неуспешными
			skipped = len(subs) - i
			break
		}

		wg.Add(1)
		go func(sub *domain.PushSubscription) {
			defer wg.Done()
			defer func() { <-sem }()

			result := s.deliver(ctx, sub, payload)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case DeliverySent:
				report.Sent++
			case DeliveryPruned:
				report.Pruned++
			default:
				report.Failed++
			}
		}(sub)
	}
	wg.Wait()

	if skipped > 0 {
		report.Failed += skipped
		s.logger.Warn("Broadcast: context done, %d subscriptions skipped: %v", skipped, ctx.Err())
	}

	s.metrics.AddPushDeliveries(DeliverySent, report.Sent)
	s.metrics.AddPushDeliveries(DeliveryFailed, report.Failed)
	s.metrics.AddPushDeliveries(DeliveryPruned, report.Pruned)

	s.logger.Info("Broadcast: %d subscriptions, sent=%d failed=%d pruned=%d",
		len(subs), report.Sent, report.Failed, report.Pruned)
	return report, nil
}

// NotifyReservationCreated сообщает операторам о новом бронировании письмом и push.
// Ошибки только логируются, бронирование уже сохранено
func (s *Service) NotifyReservationCreated(ctx context.Context, n *models.ReservationNotice) {
	if s.mail != nil {
		subject, body := reservationEmail(n)
		if err := s.mail.Send(ctx, subject, body); err != nil {
			s.logger.Error("NotifyReservationCreated: failed to send e-mail for reservation id=%s: %v", n.ReservationID, err)
		}
	}

	if s.push != nil {
		msg := domain.PushMessage{
			Title: "New reservation: " + n.ServiceName,
			Body:  fmt.Sprintf("%s, %s %s, %s", n.ClientName, n.Date, n.Time, n.Pickup),
			URL:   "/admin/reservations/" + n.ReservationID,
		}
		if _, err := s.Broadcast(ctx, msg); err != nil {
			s.logger.Error("NotifyReservationCreated: push broadcast failed for reservation id=%s: %v", n.ReservationID, err)
		}
	}
}

func (s *Service) deliver(ctx context.Context, sub *domain.PushSubscription, payload []byte) string {
	err := s.push.Send(ctx, sub, payload)
	if err == nil {
		return DeliverySent
	}

	if errors.Is(err, webpush.ErrSubscriptionGone) {
		if err := s.repo.DeleteByEndpoint(ctx, sub.Endpoint); err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("Broadcast: failed to prune subscription id=%s: %v", sub.ID, err)
		}
		return DeliveryPruned
	}

	s.logger.Warn("Broadcast: delivery to subscription id=%s failed: %v", sub.ID, err)
	return DeliveryFailed
}

func reservationEmail(n *models.ReservationNotice) (string, string) {
	price := "On quote"
	if n.TotalPrice != nil {
		price = strconv.FormatFloat(*n.TotalPrice, 'f', 2, 64)
	}
	destination := n.Destination
	if destination == "" {
		destination = "-"
	}

	subject := fmt.Sprintf("New reservation %s (%s)", n.ReservationID, n.Status)

	var b strings.Builder
	fmt.Fprintf(&b, "Service: %s\n", n.ServiceName)
	fmt.Fprintf(&b, "Client: %s <%s>, %s\n", n.ClientName, n.ClientEmail, n.ClientPhone)
	fmt.Fprintf(&b, "Date: %s %s\n", n.Date, n.Time)
	fmt.Fprintf(&b, "Pickup: %s\n", n.Pickup)
	fmt.Fprintf(&b, "Destination: %s\n", destination)
	fmt.Fprintf(&b, "Passengers: %d\n", n.Passengers)
	fmt.Fprintf(&b, "Price: %s\n", price)
	return subject, b.String()
}
