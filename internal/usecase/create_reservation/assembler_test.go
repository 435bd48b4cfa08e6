package create_reservation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

func candidate() *validation.Candidate {
	return &validation.Candidate{
		FirstName:           "Marie",
		LastName:            "Curie",
		Email:               "marie@example.com",
		Phone:               "+33612345678",
		Date:                "2025-06-01",
		Time:                "10:00",
		ServiceID:           "airport-transfers",
		VehicleTypeID:       "car",
		PickupLocation:      "cdg",
		DestinationLocation: "paris",
		Passengers:          2,
		DynamicValues: map[string]interface{}{
			"from":         "cdg",
			"to":           "paris",
			"flightNumber": "AF123",
			"luggage":      3.0,
		},
		PickupFieldKey:      "from",
		DestinationFieldKey: "to",
	}
}

func TestAssemble_WithPrice(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	r := Assemble(candidate(), &pricing.Resolution{Price: 89}, "c-1", now)

	assert.Equal(t, domain.StatusPending, r.Status)
	require.NotNil(t, r.TotalPrice)
	assert.Equal(t, 89.0, *r.TotalPrice)
	assert.Equal(t, "c-1", r.ClientID)
	assert.Equal(t, now, r.CreatedAt)
	assert.Nil(t, r.Notes)
	assert.Equal(t, map[string]interface{}{"flightNumber": "AF123", "luggage": 3.0}, r.ServiceSubData)
}

func TestAssemble_WithoutPrice(t *testing.T) {
	c := candidate()
	c.DestinationLocation = ""

	r := Assemble(c, nil, "c-1", time.Now())

	assert.Equal(t, domain.StatusQuoteRequested, r.Status)
	assert.Nil(t, r.TotalPrice)
	assert.Nil(t, r.DestinationLocation)
}

func TestAssemble_FixedColumnFieldsOverrideStatic(t *testing.T) {
	c := candidate()
	c.MeetAndGreet = false
	c.DynamicValues[domain.FieldKeyPassengers] = 4.0
	c.DynamicValues[domain.FieldKeyBabySeats] = "1"
	c.DynamicValues[domain.FieldKeyMeetAndGreet] = "yes"
	c.DynamicValues[domain.FieldKeyNotes] = "  two suitcases "
	c.DynamicValues[domain.FieldKeyBoosterSeats] = "many"

	r := Assemble(c, nil, "c-1", time.Now())

	assert.Equal(t, 4, r.Passengers)
	assert.Equal(t, 1, r.BabySeats)
	assert.Zero(t, r.BoosterSeats)
	assert.True(t, r.MeetAndGreet)
	require.NotNil(t, r.Notes)
	assert.Equal(t, "two suitcases", *r.Notes)
	for key := range domain.FixedColumnKeys {
		assert.NotContains(t, r.ServiceSubData, key)
	}
}

func TestAssemble_InvalidPassengersOverrideIgnored(t *testing.T) {
	for _, v := range []interface{}{0.0, 1e30, -1e30, math.NaN(), math.Inf(1), "99999999999"} {
		c := candidate()
		c.DynamicValues[domain.FieldKeyPassengers] = v

		r := Assemble(c, nil, "c-1", time.Now())
		assert.Equal(t, 2, r.Passengers, "value %v", v)
	}
}

func TestAssemble_OutOfRangeSeatsIgnored(t *testing.T) {
	c := candidate()
	c.DynamicValues[domain.FieldKeyBabySeats] = 1e12

	r := Assemble(c, nil, "c-1", time.Now())
	assert.Equal(t, c.BabySeats, r.BabySeats)
}
