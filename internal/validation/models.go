package validation

import "github.com/m04kA/SMC-TransferService/pkg/types"

// Submission сырые данные формы бронирования.
// Числовые поля приходят строками или числами и приводятся мягко (см. Validate)
type Submission struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	ServiceID string `json:"serviceId" validate:"required"`

	VehicleTypeID       string `json:"vehicleTypeId"`
	PickupLocation      string `json:"pickupLocation"`
	DestinationLocation string `json:"destinationLocation"`

	Passengers   types.FlexString `json:"passengers"`
	BabySeats    types.FlexString `json:"babySeats"`
	BoosterSeats types.FlexString `json:"boosterSeats"`
	MeetAndGreet bool             `json:"meetAndGreet"`
	Notes        string           `json:"notes" validate:"max=2000"`

	// Значения динамических полей по fieldKey
	DynamicFields map[string]types.FlexString `json:"serviceFields"`
}

// Candidate нормализованные данные бронирования, прошедшие валидацию
type Candidate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Date      string
	Time      string
	ServiceID string

	VehicleTypeID string

	// Уже с учетом полей isPickup/isDestination
	PickupLocation      string
	DestinationLocation string

	Passengers   int
	BabySeats    int
	BoosterSeats int
	MeetAndGreet bool
	Notes        string

	// Типизированные значения динамических полей: float64 для number, string для остальных
	DynamicValues map[string]interface{}

	// Ключи полей, из которых взяты pickup/destination (пусто, если таких полей нет)
	PickupFieldKey      string
	DestinationFieldKey string
}
