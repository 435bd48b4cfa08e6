package domain

import "time"

// Reservation represents a chauffeur transfer booking
type Reservation struct {
	ID            string
	ClientID      string
	ServiceID     string
	VehicleTypeID string
	Date          string // YYYY-MM-DD as submitted
	Time          string // HH:MM as submitted

	// Free text or a location id (see IsLocationIdentifier)
	PickupLocation      string
	DestinationLocation *string

	Passengers   int
	BabySeats    int
	BoosterSeats int
	MeetAndGreet bool

	// Answers to dynamic service fields not covered by the columns above
	ServiceSubData map[string]interface{}

	Notes      *string
	TotalPrice *float64 // nil = not priced yet (quote)
	Status     ReservationStatus
	Version    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsQuote returns true if the reservation still waits for a manual price
func (r *Reservation) IsQuote() bool {
	return r.TotalPrice == nil
}

// IsActive returns true if the reservation is neither cancelled nor completed
func (r *Reservation) IsActive() bool {
	return !r.Status.IsTerminal()
}

// ReservationFilter filters pushed down to the storage layer
type ReservationFilter struct {
	Status *ReservationStatus
	Limit  uint64
	Offset uint64
}

// ReservationUpdate carries admin field edits; nil fields are left untouched
type ReservationUpdate struct {
	VehicleTypeID       *string
	Date                *string
	Time                *string
	PickupLocation      *string
	DestinationLocation *string
	Passengers          *int
	BabySeats           *int
	BoosterSeats        *int
	MeetAndGreet        *bool
	Notes               *string
	TotalPrice          *float64
	ServiceSubData      map[string]interface{}
}

// IsEmpty returns true if the update changes nothing
func (u *ReservationUpdate) IsEmpty() bool {
	return u.VehicleTypeID == nil && u.Date == nil && u.Time == nil &&
		u.PickupLocation == nil && u.DestinationLocation == nil &&
		u.Passengers == nil && u.BabySeats == nil && u.BoosterSeats == nil &&
		u.MeetAndGreet == nil && u.Notes == nil && u.TotalPrice == nil &&
		u.ServiceSubData == nil
}

// Apply copies the non-nil fields of the update onto the reservation
func (u *ReservationUpdate) Apply(r *Reservation) {
	if u.VehicleTypeID != nil {
		r.VehicleTypeID = *u.VehicleTypeID
	}
	if u.Date != nil {
		r.Date = *u.Date
	}
	if u.Time != nil {
		r.Time = *u.Time
	}
	if u.PickupLocation != nil {
		r.PickupLocation = *u.PickupLocation
	}
	if u.DestinationLocation != nil {
		if *u.DestinationLocation == "" {
			r.DestinationLocation = nil
		} else {
			r.DestinationLocation = u.DestinationLocation
		}
	}
	if u.Passengers != nil {
		r.Passengers = *u.Passengers
	}
	if u.BabySeats != nil {
		r.BabySeats = *u.BabySeats
	}
	if u.BoosterSeats != nil {
		r.BoosterSeats = *u.BoosterSeats
	}
	if u.MeetAndGreet != nil {
		r.MeetAndGreet = *u.MeetAndGreet
	}
	if u.Notes != nil {
		r.Notes = u.Notes
	}
	if u.TotalPrice != nil {
		r.TotalPrice = u.TotalPrice
	}
	if u.ServiceSubData != nil {
		r.ServiceSubData = u.ServiceSubData
	}
}
