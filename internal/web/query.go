package web

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"flightbooking/internal/domain"
)

// FilterParams are the raw query parameters of the flight results
// page. Empty values mean "no filter".
type FilterParams struct {
	Source      string
	Destination string
	Date        string
}

// BuildAirportMap indexes airports by id for O(1) joins when
// rendering a flight's endpoints.
func BuildAirportMap(airports []domain.Airport) map[int64]domain.Airport {
	m := make(map[int64]domain.Airport, len(airports))
	for _, a := range airports {
		m[a.ID] = a
	}
	return m
}

// FilterFlights keeps a flight iff every supplied filter matches.
// Ids are compared stringwise against the raw query values; the date
// filter compares the UTC calendar day of departure.
func FilterFlights(flights []domain.Flight, params FilterParams) []domain.Flight {
	filtered := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if params.Source != "" && strconv.FormatInt(f.SourceAirportID, 10) != params.Source {
			continue
		}
		if params.Destination != "" && strconv.FormatInt(f.DestinationAirportID, 10) != params.Destination {
			continue
		}
		if params.Date != "" && f.DepartureTime.UTC().Format("2006-01-02") != params.Date {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

const (
	SortDepartureTime  = "departure_time"
	SortArrivalTime    = "arrival_time"
	SortSeatsAvailable = "seats_available"
)

// SortFlights orders flights in place. Unknown sort fields fall back
// to departure_time; any order other than "desc" is ascending.
func SortFlights(flights []domain.Flight, sortField, order string) {
	switch sortField {
	case SortDepartureTime, SortArrivalTime, SortSeatsAvailable:
	default:
		sortField = SortDepartureTime
	}

	dir := 1
	if order == "desc" {
		dir = -1
	}

	sort.SliceStable(flights, func(i, j int) bool {
		var cmp int
		switch sortField {
		case SortArrivalTime:
			cmp = compareTimes(flights[i].ArrivalTime, flights[j].ArrivalTime)
		case SortSeatsAvailable:
			cmp = flights[i].SeatsAvailable - flights[j].SeatsAvailable
		default:
			cmp = compareTimes(flights[i].DepartureTime, flights[j].DepartureTime)
		}
		return cmp*dir < 0
	})
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// SortBookingsByDateDesc orders bookings newest first. The bookings
// list is not otherwise configurable.
func SortBookingsByDateDesc(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})
}

// FormatDuration renders a flight duration as "2h 15m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}
