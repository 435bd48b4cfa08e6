package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"quote requested to pending", StatusQuoteRequested, StatusPending, true},
		{"pending to quote sent", StatusPending, StatusQuoteSent, true},
		{"skip forward", StatusQuoteRequested, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"cancel from pending", StatusPending, StatusCancelled, true},
		{"cancel from confirmed", StatusConfirmed, StatusCancelled, true},
		{"backward rejected", StatusConfirmed, StatusPending, false},
		{"same state rejected", StatusPending, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"unknown target", StatusPending, ReservationStatus("archived"), false},
		{"unknown source", ReservationStatus(""), StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_CanReopenTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"confirmed back to pending", StatusConfirmed, StatusPending, true},
		{"completed back to confirmed", StatusCompleted, StatusConfirmed, true},
		{"cancelled to quote requested", StatusCancelled, StatusQuoteRequested, true},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, true},
		{"forward is not a reopen", StatusPending, StatusConfirmed, false},
		{"same state", StatusPending, StatusPending, false},
		{"into terminal", StatusCompleted, StatusCancelled, false},
		{"into completed", StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanReopenTo(tt.to))
		})
	}
}

func TestParseReservationStatus(t *testing.T) {
	s, ok := ParseReservationStatus("quote_sent")
	assert.True(t, ok)
	assert.Equal(t, StatusQuoteSent, s)

	_, ok = ParseReservationStatus("QUOTE_SENT")
	assert.False(t, ok)

	assert.Len(t, AllStatuses, 7)
	for _, st := range AllStatuses {
		assert.True(t, st.IsValid(), st)
	}
}
