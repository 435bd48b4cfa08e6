package domain

import (
	"fmt"
	"sort"
	"time"
)

// Service represents a bookable offering (airport transfer, private tour, ...)
type Service struct {
	ID          string
	Name        string
	Description string
	CategoryID  *string
	IsAvailable bool
	IsPopular   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldType is the variant tag of a dynamic service field
type FieldType string

const (
	FieldText                FieldType = "text"
	FieldNumber              FieldType = "number"
	FieldSelect              FieldType = "select"
	FieldTextarea            FieldType = "textarea"
	FieldDate                FieldType = "date"
	FieldTime                FieldType = "time"
	FieldLocationSelect      FieldType = "location_select"
	FieldAddressAutocomplete FieldType = "address_autocomplete"
)

// IsValid returns true for known field types
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldNumber, FieldSelect, FieldTextarea,
		FieldDate, FieldTime, FieldLocationSelect, FieldAddressAutocomplete:
		return true
	}
	return false
}

// CarriesLocation returns true if the field may act as pickup or destination
func (t FieldType) CarriesLocation() bool {
	return t == FieldLocationSelect || t == FieldAddressAutocomplete
}

// ServiceField is a dynamic, per-service input definition used for both form rendering and validation
type ServiceField struct {
	ID            string
	ServiceID     string
	FieldKey      string
	FieldType     FieldType
	Label         string
	Required      bool
	Options       []string // select only
	Min           *float64 // number only
	Max           *float64 // number only
	IsPickup      bool
	IsDestination bool
	DefaultValue  *string
	FieldOrder    int
}

// SortFields orders fields by FieldOrder, ties broken by FieldKey
func SortFields(fields []ServiceField) {
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].FieldOrder != fields[j].FieldOrder {
			return fields[i].FieldOrder < fields[j].FieldOrder
		}
		return fields[i].FieldKey < fields[j].FieldKey
	})
}

// ValidateFieldSchema checks the invariants of a service's field set.
// A violation means the schema is misconfigured, not that user input is wrong.
func ValidateFieldSchema(fields []ServiceField) error {
	keys := make(map[string]struct{}, len(fields))
	pickupKey, destinationKey := "", ""

	for _, f := range fields {
		if f.FieldKey == "" {
			return fmt.Errorf("%w: field id=%s has empty key", ErrInvalidSchema, f.ID)
		}
		if !f.FieldType.IsValid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidSchema, f.FieldKey, f.FieldType)
		}
		if _, dup := keys[f.FieldKey]; dup {
			return fmt.Errorf("%w: duplicate field key %q", ErrInvalidSchema, f.FieldKey)
		}
		keys[f.FieldKey] = struct{}{}

		if f.IsPickup && f.IsDestination {
			return fmt.Errorf("%w: field %q is both pickup and destination", ErrInvalidSchema, f.FieldKey)
		}
		if (f.IsPickup || f.IsDestination) && !f.FieldType.CarriesLocation() {
			return fmt.Errorf("%w: field %q of type %q cannot carry a location", ErrInvalidSchema, f.FieldKey, f.FieldType)
		}
		if f.IsPickup {
			if pickupKey != "" {
				return fmt.Errorf("%w: fields %q and %q are both marked as pickup", ErrInvalidSchema, pickupKey, f.FieldKey)
			}
			pickupKey = f.FieldKey
		}
		if f.IsDestination {
			if destinationKey != "" {
				return fmt.Errorf("%w: fields %q and %q are both marked as destination", ErrInvalidSchema, destinationKey, f.FieldKey)
			}
			destinationKey = f.FieldKey
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("%w: field %q has min > max", ErrInvalidSchema, f.FieldKey)
		}
	}

	return nil
}
