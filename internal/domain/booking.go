package domain

import "time"

// Booking is created exactly once per POST /api/bookings and never
// updated or deleted. The store generates ID and BookingDate.
type Booking struct {
	ID             int64     `json:"booking_id"`
	FlightID       int64     `json:"flight_id"`
	PassengerName  string    `json:"passenger_name"`
	PassengerEmail string    `json:"passenger_email"`
	PassengerPhone *string   `json:"passenger_phone"`
	BookingDate    time.Time `json:"booking_date"`
}
