package mailer

import "errors"

var (
	// ErrSend возвращается, когда SMTP сервер не принял письмо
	ErrSend = errors.New("mailer: failed to send message")

	// ErrNoRecipients возвращается, если не задан ни один получатель
	ErrNoRecipients = errors.New("mailer: no recipients configured")
)
