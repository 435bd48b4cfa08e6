package domain

// Booking defaults
const (
	DefaultPassengers = 1
	MinPassengers     = 1
)

// Business validation constants
const (
	MaxNotesLength          = 2000
	MaxContactMessageLength = 5000
	MinPhoneLength          = 10
	// Stored location values shorter than this that match the identifier pattern are treated as location ids
	MaxLocationIdentifierLength = 20
)

// Pagination
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Date and time formats used by the website
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Fixed reservation columns that dynamic fields may fill instead of serviceSubData
const (
	FieldKeyPassengers   = "passengers"
	FieldKeyBabySeats    = "babySeats"
	FieldKeyBoosterSeats = "boosterSeats"
	FieldKeyMeetAndGreet = "meetAndGreet"
	FieldKeyNotes        = "notes"
)

// FixedColumnKeys dynamic field keys mapped to reservation columns
var FixedColumnKeys = map[string]struct{}{
	FieldKeyPassengers:   {},
	FieldKeyBabySeats:    {},
	FieldKeyBoosterSeats: {},
	FieldKeyMeetAndGreet: {},
	FieldKeyNotes:        {},
}

// ActiveStatuses statuses that still need operator attention
var ActiveStatuses = []ReservationStatus{
	StatusQuoteRequested,
	StatusPending,
	StatusQuoteSent,
	StatusQuoteAccepted,
	StatusConfirmed,
}
