package models

import (
	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// Request модели

// SubscriptionKeys ключи шифрования из PushSubscription браузера
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// SubscribeRequest подписка в формате PushSubscription.toJSON()
type SubscribeRequest struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}

// UnsubscribeRequest запрос на удаление подписки
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// SendRequest ручная рассылка из админки
type SendRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// ReservationNotice данные нового бронирования для уведомления операторов
type ReservationNotice struct {
	ReservationID string
	Status        string
	ServiceName   string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	Date          string
	Time          string
	Pickup        string
	Destination   string
	Passengers    int
	TotalPrice    *float64
}

// Response модели

// SubscriptionResponse сохраненная подписка
type SubscriptionResponse struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
}

// PushReportResponse итог рассылки
type PushReportResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Pruned int `json:"pruned"`
}

// Методы конвертации

// ToDomainSubscription конвертирует запрос в domain модель
func (r *SubscribeRequest) ToDomainSubscription() *domain.PushSubscription {
	return &domain.PushSubscription{
		Endpoint: r.Endpoint,
		P256dh:   r.Keys.P256dh,
		Auth:     r.Keys.Auth,
	}
}

// ToDomainMessage конвертирует запрос в domain модель
func (r *SendRequest) ToDomainMessage() domain.PushMessage {
	return domain.PushMessage{Title: r.Title, Body: r.Body, URL: r.URL}
}

// FromDomainReport конвертирует итог рассылки в DTO
func FromDomainReport(r domain.PushReport) *PushReportResponse {
	return &PushReportResponse{Sent: r.Sent, Failed: r.Failed, Pruned: r.Pruned}
}
