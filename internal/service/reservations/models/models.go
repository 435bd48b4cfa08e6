package models

import (
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// SearchScopePage поиск по q выполняется только внутри выбранной страницы
const SearchScopePage = "page"

// Request модели

// ListReservationsRequest запрос списка бронирований для админки
type ListReservationsRequest struct {
	Status *string `json:"status,omitempty"`
	Limit  uint64  `json:"limit"`
	Offset uint64  `json:"offset"`
	Query  string  `json:"q,omitempty"` // подстрока по id, адресам, имени и email клиента
}

// ChangeStatusRequest запрос на смену статуса (и на reopen)
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// UpdateReservationRequest правка полей бронирования; nil поля не меняются
type UpdateReservationRequest struct {
	Version             int                    `json:"version"`
	VehicleTypeID       *string                `json:"vehicleTypeId,omitempty"`
	Date                *string                `json:"date,omitempty"`
	Time                *string                `json:"time,omitempty"`
	PickupLocation      *string                `json:"pickupLocation,omitempty"`
	DestinationLocation *string                `json:"destinationLocation,omitempty"`
	Passengers          *int                   `json:"passengers,omitempty"`
	BabySeats           *int                   `json:"babySeats,omitempty"`
	BoosterSeats        *int                   `json:"boosterSeats,omitempty"`
	MeetAndGreet        *bool                  `json:"meetAndGreet,omitempty"`
	Notes               *string                `json:"notes,omitempty"`
	TotalPrice          *float64               `json:"totalPrice,omitempty"`
	ServiceSubData      map[string]interface{} `json:"serviceSubData,omitempty"`
}

// ToDomainUpdate конвертирует запрос в domain модель
func (r *UpdateReservationRequest) ToDomainUpdate() domain.ReservationUpdate {
	return domain.ReservationUpdate{
		VehicleTypeID:       r.VehicleTypeID,
		Date:                r.Date,
		Time:                r.Time,
		PickupLocation:      r.PickupLocation,
		DestinationLocation: r.DestinationLocation,
		Passengers:          r.Passengers,
		BabySeats:           r.BabySeats,
		BoosterSeats:        r.BoosterSeats,
		MeetAndGreet:        r.MeetAndGreet,
		Notes:               r.Notes,
		TotalPrice:          r.TotalPrice,
		ServiceSubData:      r.ServiceSubData,
	}
}

// Response модели

// ClientResponse контактные данные клиента
type ClientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                  string                 `json:"id"`
	ClientID            string                 `json:"clientId"`
	ServiceID           string                 `json:"serviceId"`
	VehicleTypeID       string                 `json:"vehicleTypeId"`
	Date                string                 `json:"date"` // "2025-10-15"
	Time                string                 `json:"time"` // "10:00"
	PickupLocation      string                 `json:"pickupLocation"`
	DestinationLocation *string                `json:"destinationLocation"`
	Passengers          int                    `json:"passengers"`
	BabySeats           int                    `json:"babySeats"`
	BoosterSeats        int                    `json:"boosterSeats"`
	MeetAndGreet        bool                   `json:"meetAndGreet"`
	ServiceSubData      map[string]interface{} `json:"serviceSubData"`
	Notes               *string                `json:"notes,omitempty"`
	TotalPrice          *float64               `json:"totalPrice"`
	Status              string                 `json:"status"`
	Version             int                    `json:"version"`

	Client *ClientResponse `json:"client,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований.
// PageSize - сколько записей вернула БД, Matched - сколько из них прошло фильтр q
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Limit        uint64                `json:"limit"`
	Offset       uint64                `json:"offset"`
	PageSize     int                   `json:"pageSize"`
	Matched      int                   `json:"matched"`
	SearchScope  string                `json:"searchScope"`
}

// Методы конвертации

// FromDomainClient конвертирует клиента в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, c *domain.Client) *ReservationResponse {
	if r == nil {
		return nil
	}

	subData := r.ServiceSubData
	if subData == nil {
		subData = map[string]interface{}{}
	}

	return &ReservationResponse{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		ServiceID:           r.ServiceID,
		VehicleTypeID:       r.VehicleTypeID,
		Date:                r.Date,
		Time:                r.Time,
		PickupLocation:      r.PickupLocation,
		DestinationLocation: r.DestinationLocation,
		Passengers:          r.Passengers,
		BabySeats:           r.BabySeats,
		BoosterSeats:        r.BoosterSeats,
		MeetAndGreet:        r.MeetAndGreet,
		ServiceSubData:      subData,
		Notes:               r.Notes,
		TotalPrice:          r.TotalPrice,
		Status:              string(r.Status),
		Version:             r.Version,
		Client:              FromDomainClient(c),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
