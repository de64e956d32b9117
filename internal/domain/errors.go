package domain

import "errors"

var (
	// ErrFlightNotFound maps the store's foreign-key violation on
	// bookings.flight_id back to the caller.
	ErrFlightNotFound = errors.New("flight does not exist")

	ErrMissingFields = errors.New("missing required fields")
)
