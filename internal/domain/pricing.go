package domain

import "time"

// ServiceVehiclePricing is a fixed price for a (service, vehicle type, pickup, destination) combination
type ServiceVehiclePricing struct {
	ID                    string
	ServiceID             string
	VehicleTypeID         string
	PickupLocationID      string
	DestinationLocationID string
	Price                 float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Key returns the semantic key of the pricing row
func (p *ServiceVehiclePricing) Key() PricingKey {
	return PricingKey{
		ServiceID:             p.ServiceID,
		VehicleTypeID:         p.VehicleTypeID,
		PickupLocationID:      p.PickupLocationID,
		DestinationLocationID: p.DestinationLocationID,
	}
}

// PricingKey is the composite semantic key of a pricing row
type PricingKey struct {
	ServiceID             string
	VehicleTypeID         string
	PickupLocationID      string
	DestinationLocationID string
}

// IsComplete returns true if every part of the key is set
func (k PricingKey) IsComplete() bool {
	return k.ServiceID != "" && k.VehicleTypeID != "" &&
		k.PickupLocationID != "" && k.DestinationLocationID != ""
}

// String is used as a cache key and in logs
func (k PricingKey) String() string {
	return k.ServiceID + "|" + k.VehicleTypeID + "|" + k.PickupLocationID + "|" + k.DestinationLocationID
}

// PricingFilter filters for the admin pricing list
type PricingFilter struct {
	ServiceID     *string
	VehicleTypeID *string
	Limit         uint64
	Offset        uint64
}

// PricingConflict describes a key that matches more than one pricing row
type PricingConflict struct {
	Key   PricingKey
	Count int
	IDs   []string
}
