package domain

import "errors"

// ErrInvalidSchema is returned when a service field schema violates its invariants
var ErrInvalidSchema = errors.New("domain: invalid service field schema")
