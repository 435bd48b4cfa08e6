package pdfrenderer

import "time"

// Line строка с ответом на динамическое поле услуги
type Line struct {
	Label string
	Value string
}

// ReservationDocument плоские данные бронирования для печати
type ReservationDocument struct {
	ReservationID string
	Status        string
	CreatedAt     time.Time

	ServiceName     string
	VehicleTypeName string
	Date            string
	Time            string
	Pickup          string
	Destination     string

	ClientName  string
	ClientEmail string
	ClientPhone string

	Passengers   int
	BabySeats    int
	BoosterSeats int
	MeetAndGreet bool
	Notes        string

	Details []Line

	TotalPrice *float64 // nil = цена по запросу
	Currency   string
}
