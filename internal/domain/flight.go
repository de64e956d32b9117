package domain

import "time"

type Flight struct {
	ID                   int64     `json:"flight_id"`
	Code                 string    `json:"flight_code"`
	SourceAirportID      int64     `json:"source_airport_id"`
	DestinationAirportID int64     `json:"destination_airport_id"`
	DepartureTime        time.Time `json:"departure_time"`
	ArrivalTime          time.Time `json:"arrival_time"`
	SeatsAvailable       int       `json:"seats_available"`
}

// Duration is the scheduled time in the air. Derived for display,
// never stored.
func (f Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}
