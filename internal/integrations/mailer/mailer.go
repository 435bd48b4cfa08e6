package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Dialer отправляет готовые письма. Реализуется *gomail.Dialer
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config параметры SMTP
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string // операторы, получающие уведомления
}

// Mailer отправляет текстовые уведомления операторам
type Mailer struct {
	dialer Dialer
	from   string
	to     []string
}

// New создает Mailer поверх gomail.Dialer
func New(cfg Config) *Mailer {
	return NewWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, cfg.To)
}

// NewWithDialer создает Mailer с произвольным транспортом
func NewWithDialer(dialer Dialer, from string, to []string) *Mailer {
	return &Mailer{
		dialer: dialer,
		from:   from,
		to:     to,
	}
}

// Send отправляет письмо всем операторам.
// gomail не принимает context, поэтому отмена проверяется только до отправки
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if len(m.to) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}
