package domain

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusQuoteRequested ReservationStatus = "quote_requested"
	StatusPending        ReservationStatus = "pending"
	StatusQuoteSent      ReservationStatus = "quote_sent"
	StatusQuoteAccepted  ReservationStatus = "quote_accepted"
	StatusConfirmed      ReservationStatus = "confirmed"
	StatusCompleted      ReservationStatus = "completed"
	StatusCancelled      ReservationStatus = "cancelled"
)

// lifecycleOrder forward order of the lifecycle; cancelled is outside of it
var lifecycleOrder = map[ReservationStatus]int{
	StatusQuoteRequested: 0,
	StatusPending:        1,
	StatusQuoteSent:      2,
	StatusQuoteAccepted:  3,
	StatusConfirmed:      4,
	StatusCompleted:      5,
}

// AllStatuses lists every known status in lifecycle order
var AllStatuses = []ReservationStatus{
	StatusQuoteRequested,
	StatusPending,
	StatusQuoteSent,
	StatusQuoteAccepted,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ParseReservationStatus converts a raw string into a known status
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	if status.IsValid() {
		return status, true
	}
	return "", false
}

// IsValid returns true if the status is a recognized reservation status
func (s ReservationStatus) IsValid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := lifecycleOrder[s]
	return ok
}

// IsTerminal returns true if no further regular transitions are possible
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether a regular (non-reopen) transition is allowed.
// Moves go forward only, skipping intermediate states is allowed.
// Cancellation is allowed from every non-terminal state.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	if !s.IsValid() || !target.IsValid() || s == target {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return lifecycleOrder[target] > lifecycleOrder[s]
}

// CanReopenTo reports whether an explicit reopen may move the reservation back to target.
// Target must be a non-terminal state strictly earlier than the current one;
// a cancelled reservation can be reopened into any non-terminal state.
func (s ReservationStatus) CanReopenTo(target ReservationStatus) bool {
	if !s.IsValid() || !target.IsValid() || target.IsTerminal() {
		return false
	}
	if s == StatusCancelled {
		return true
	}
	return lifecycleOrder[target] < lifecycleOrder[s]
}
