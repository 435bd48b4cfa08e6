package submit_contact

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

const mailTimeout = 30 * time.Second

// UseCase сохраняет обращение и пересылает его операторам
type UseCase struct {
	repo   ContactRepository
	mail   MailSender
	logger Logger

	pending sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case. mail может быть nil
func NewUseCase(repo ContactRepository, mail MailSender, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		mail:   mail,
		logger: logger,
	}
}

// Execute проверяет и сохраняет обращение. Ошибки формы возвращаются как validation.FieldErrors
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и проверка формы
	normalized := Request{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
	}

	fieldErrs, err := validation.Struct(&normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to validate request: %v", ErrInternal, err)
	}
	if len(fieldErrs) > 0 {
		uc.logger.Warn("SubmitContact: validation failed: %v", fieldErrs)
		return nil, fieldErrs
	}

	// 2. Сохраняем обращение
	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		FirstName: normalized.FirstName,
		LastName:  normalized.LastName,
		Email:     normalized.Email,
		Message:   normalized.Message,
	}
	if normalized.Phone != "" {
		phone := validation.CleanPhoneNumber(normalized.Phone)
		msg.Phone = &phone
	}

	if _, err := uc.repo.Create(ctx, msg); err != nil {
		uc.logger.Error("SubmitContact: failed to save message: %v", err)
		return nil, fmt.Errorf("%w: failed to save message: %v", ErrInternal, err)
	}
	uc.logger.Info("SubmitContact: saved contact message id=%s", msg.ID)

	// 3. Пересылаем операторам в фоне
	uc.forward(msg)

	return &Response{
		ID:        msg.ID,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// Wait дожидается отправки писем
func (uc *UseCase) Wait() {
	uc.pending.Wait()
}

func (uc *UseCase) forward(m *domain.ContactMessage) {
	if uc.mail == nil {
		return
	}

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		phone := "-"
		if m.Phone != nil {
			phone = *m.Phone
		}
		subject := fmt.Sprintf("Contact form: %s %s", m.FirstName, m.LastName)
		body := fmt.Sprintf("From: %s %s <%s>\nPhone: %s\n\n%s\n", m.FirstName, m.LastName, m.Email, phone, m.Message)

		if err := uc.mail.Send(ctx, subject, body); err != nil {
			uc.logger.Error("SubmitContact: failed to forward message id=%s: %v", m.ID, err)
		}
	}()
}
