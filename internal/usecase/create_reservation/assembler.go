package create_reservation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

// Assemble собирает бронирование из проверенной формы и результата поиска цены.
// Без цены бронирование становится запросом на расчет (quote_requested), с ценой - pending.
// ID не заполняется
func Assemble(c *validation.Candidate, res *pricing.Resolution, clientID string, now time.Time) *domain.Reservation {
	r := &domain.Reservation{
		ClientID:       clientID,
		ServiceID:      c.ServiceID,
		VehicleTypeID:  c.VehicleTypeID,
		Date:           c.Date,
		Time:           c.Time,
		PickupLocation: c.PickupLocation,
		Passengers:     c.Passengers,
		BabySeats:      c.BabySeats,
		BoosterSeats:   c.BoosterSeats,
		MeetAndGreet:   c.MeetAndGreet,
		ServiceSubData: map[string]interface{}{},
		Status:         domain.StatusQuoteRequested,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if c.DestinationLocation != "" {
		destination := c.DestinationLocation
		r.DestinationLocation = &destination
	}
	if c.Notes != "" {
		notes := c.Notes
		r.Notes = &notes
	}

	if res != nil {
		price := res.Price
		r.TotalPrice = &price
		r.Status = domain.StatusPending
	}

	for key, value := range c.DynamicValues {
		if key == c.PickupFieldKey || key == c.DestinationFieldKey {
			continue
		}
		if _, fixed := domain.FixedColumnKeys[key]; fixed {
			applyFixedColumn(r, key, value)
			continue
		}
		r.ServiceSubData[key] = value
	}

	if r.Passengers < domain.MinPassengers {
		r.Passengers = domain.DefaultPassengers
	}

	return r
}

// applyFixedColumn значение динамического поля перекрывает одноименную колонку.
// Непригодные значения игнорируются
func applyFixedColumn(r *domain.Reservation, key string, value interface{}) {
	switch key {
	case domain.FieldKeyPassengers:
		if n, ok := toInt(value); ok && n >= domain.MinPassengers {
			r.Passengers = n
		}
	case domain.FieldKeyBabySeats:
		if n, ok := toInt(value); ok && n >= 0 {
			r.BabySeats = n
		}
	case domain.FieldKeyBoosterSeats:
		if n, ok := toInt(value); ok && n >= 0 {
			r.BoosterSeats = n
		}
	case domain.FieldKeyMeetAndGreet:
		if b, ok := toBool(value); ok {
			r.MeetAndGreet = b
		}
	case domain.FieldKeyNotes:
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			notes := strings.TrimSpace(s)
			r.Notes = &notes
		}
	}
}

// toInt значения вне диапазона INT колонки (и NaN) считаются непригодными
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		return int(n), err == nil
	}
	return 0, false
}

func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0", "":
			return false, true
		}
	}
	return false, false
}
