package webpush

import "errors"

var (
	// ErrSubscriptionGone возвращается, когда push-сервис ответил 404/410 и подписку нужно удалить
	ErrSubscriptionGone = errors.New("webpush client: subscription expired or unsubscribed")

	// ErrDelivery возвращается при неуспешном статусе от push-сервиса
	ErrDelivery = errors.New("webpush client: delivery rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (шифрование, сеть)
	ErrInternal = errors.New("webpush client: internal error")

	// ErrNotConfigured возвращается, если не заданы VAPID ключи
	ErrNotConfigured = errors.New("webpush client: VAPID keys are not configured")
)
