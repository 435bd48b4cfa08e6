package models

import (
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// Request модели

// PricingRequest запрос на создание или замену строки цены
type PricingRequest struct {
	ServiceID             string  `json:"serviceId"`
	VehicleTypeID         string  `json:"vehicleTypeId"`
	PickupLocationID      string  `json:"pickupLocationId"`
	DestinationLocationID string  `json:"destinationLocationId"`
	Price                 float64 `json:"price"`
}

// ListPricingRequest фильтры списка цен
type ListPricingRequest struct {
	ServiceID     *string
	VehicleTypeID *string
	Limit         uint64
	Offset        uint64
}

// Response модели

// PricingResponse строка цены
type PricingResponse struct {
	ID                    string    `json:"id"`
	ServiceID             string    `json:"serviceId"`
	VehicleTypeID         string    `json:"vehicleTypeId"`
	PickupLocationID      string    `json:"pickupLocationId"`
	DestinationLocationID string    `json:"destinationLocationId"`
	Price                 float64   `json:"price"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// PricingListResponse список цен
type PricingListResponse struct {
	Pricing []PricingResponse `json:"pricing"`
	Limit   uint64            `json:"limit"`
	Offset  uint64            `json:"offset"`
}

// ConflictResponse ключ, которому соответствует несколько строк
type ConflictResponse struct {
	ServiceID             string   `json:"serviceId"`
	VehicleTypeID         string   `json:"vehicleTypeId"`
	PickupLocationID      string   `json:"pickupLocationId"`
	DestinationLocationID string   `json:"destinationLocationId"`
	Count                 int      `json:"count"`
	PricingIDs            []string `json:"pricingIds"` // первым идет используемый резолвером
}

// ConflictListResponse список конфликтов
type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
}

// QuoteResponse ответ публичного расчета цены
type QuoteResponse struct {
	Price         *float64 `json:"price"`
	QuoteRequired bool     `json:"quoteRequired"`
}

// Методы конвертации

// Key возвращает ключ цены из запроса
func (r *PricingRequest) Key() domain.PricingKey {
	return domain.PricingKey{
		ServiceID:             r.ServiceID,
		VehicleTypeID:         r.VehicleTypeID,
		PickupLocationID:      r.PickupLocationID,
		DestinationLocationID: r.DestinationLocationID,
	}
}

// ApplyTo копирует ключ и цену в domain модель
func (r *PricingRequest) ApplyTo(p *domain.ServiceVehiclePricing) {
	p.ServiceID = r.ServiceID
	p.VehicleTypeID = r.VehicleTypeID
	p.PickupLocationID = r.PickupLocationID
	p.DestinationLocationID = r.DestinationLocationID
	p.Price = r.Price
}

// FromDomainPricing конвертирует domain модель в DTO
func FromDomainPricing(p *domain.ServiceVehiclePricing) *PricingResponse {
	if p == nil {
		return nil
	}
	return &PricingResponse{
		ID:                    p.ID,
		ServiceID:             p.ServiceID,
		VehicleTypeID:         p.VehicleTypeID,
		PickupLocationID:      p.PickupLocationID,
		DestinationLocationID: p.DestinationLocationID,
		Price:                 p.Price,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// FromDomainConflicts конвертирует список конфликтов
func FromDomainConflicts(conflicts []domain.PricingConflict) *ConflictListResponse {
	result := &ConflictListResponse{Conflicts: make([]ConflictResponse, 0, len(conflicts))}
	for _, c := range conflicts {
		result.Conflicts = append(result.Conflicts, ConflictResponse{
			ServiceID:             c.Key.ServiceID,
			VehicleTypeID:         c.Key.VehicleTypeID,
			PickupLocationID:      c.Key.PickupLocationID,
			DestinationLocationID: c.Key.DestinationLocationID,
			Count:                 c.Count,
			PricingIDs:            c.IDs,
		})
	}
	return result
}
