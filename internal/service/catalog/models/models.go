package models

import (
	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// Request модели

// FieldRequest запрос на создание или замену поля услуги
type FieldRequest struct {
	FieldKey      string   `json:"fieldKey"`
	FieldType     string   `json:"fieldType"`
	Label         string   `json:"label"`
	Required      bool     `json:"required"`
	Options       []string `json:"options,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	IsPickup      bool     `json:"isPickup"`
	IsDestination bool     `json:"isDestination"`
	DefaultValue  *string  `json:"defaultValue,omitempty"`
	FieldOrder    int      `json:"fieldOrder"`
}

// LocationRequest запрос на создание локации
type LocationRequest struct {
	ID   string `json:"id"` // опционально, например "cdg"
	Name string `json:"name"`
	Type string `json:"type"`
}

// VehicleTypeRequest запрос на создание типа автомобиля
type VehicleTypeRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MinPassengers int    `json:"minPassengers"`
	MaxPassengers int    `json:"maxPassengers"`
}

// Response модели

// FieldResponse поле услуги
type FieldResponse struct {
	ID            string   `json:"id"`
	FieldKey      string   `json:"fieldKey"`
	FieldType     string   `json:"fieldType"`
	Label         string   `json:"label"`
	Required      bool     `json:"required"`
	Options       []string `json:"options,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	IsPickup      bool     `json:"isPickup"`
	IsDestination bool     `json:"isDestination"`
	DefaultValue  *string  `json:"defaultValue,omitempty"`
	FieldOrder    int      `json:"fieldOrder"`
}

// ServiceResponse услуга; Fields заполняется только для детального запроса
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	IsPopular   bool            `json:"isPopular"`
	Fields      []FieldResponse `json:"fields,omitempty"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// LocationResponse локация
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// LocationListResponse список локаций
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// VehicleTypeResponse тип автомобиля
type VehicleTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MinPassengers int    `json:"minPassengers"`
	MaxPassengers int    `json:"maxPassengers"`
}

// VehicleTypeListResponse список типов автомобилей
type VehicleTypeListResponse struct {
	VehicleTypes []VehicleTypeResponse `json:"vehicleTypes"`
}

// Методы конвертации

// ToDomainField конвертирует запрос в domain модель
func (r *FieldRequest) ToDomainField(id, serviceID string) domain.ServiceField {
	return domain.ServiceField{
		ID:            id,
		ServiceID:     serviceID,
		FieldKey:      r.FieldKey,
		FieldType:     domain.FieldType(r.FieldType),
		Label:         r.Label,
		Required:      r.Required,
		Options:       r.Options,
		Min:           r.Min,
		Max:           r.Max,
		IsPickup:      r.IsPickup,
		IsDestination: r.IsDestination,
		DefaultValue:  r.DefaultValue,
		FieldOrder:    r.FieldOrder,
	}
}

// FromDomainField конвертирует поле в DTO
func FromDomainField(f domain.ServiceField) FieldResponse {
	return FieldResponse{
		ID:            f.ID,
		FieldKey:      f.FieldKey,
		FieldType:     string(f.FieldType),
		Label:         f.Label,
		Required:      f.Required,
		Options:       f.Options,
		Min:           f.Min,
		Max:           f.Max,
		IsPickup:      f.IsPickup,
		IsDestination: f.IsDestination,
		DefaultValue:  f.DefaultValue,
		FieldOrder:    f.FieldOrder,
	}
}

// FromDomainService конвертирует услугу (и ее поля, если переданы) в DTO
func FromDomainService(s *domain.Service, fields []domain.ServiceField) ServiceResponse {
	resp := ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CategoryID:  s.CategoryID,
		IsAvailable: s.IsAvailable,
		IsPopular:   s.IsPopular,
	}
	if len(fields) > 0 {
		resp.Fields = make([]FieldResponse, 0, len(fields))
		for _, f := range fields {
			resp.Fields = append(resp.Fields, FromDomainField(f))
		}
	}
	return resp
}

// FromDomainLocation конвертирует локацию в DTO
func FromDomainLocation(l domain.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name, Type: string(l.Type)}
}

// FromDomainVehicleType конвертирует тип автомобиля в DTO
func FromDomainVehicleType(v domain.VehicleType) VehicleTypeResponse {
	return VehicleTypeResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		MinPassengers: v.MinPassengers,
		MaxPassengers: v.MaxPassengers,
	}
}
