package repository

import (
	"context"

	"flightbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_id, flight_code, source_airport_id, destination_airport_id, departure_time, arrival_time, seats_available FROM flights`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Code, &f.SourceAirportID, &f.DestinationAirportID, &f.DepartureTime, &f.ArrivalTime, &f.SeatsAvailable); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT flight_id, flight_code, source_airport_id, destination_airport_id, departure_time, arrival_time, seats_available FROM flights WHERE flight_id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Code, &f.SourceAirportID, &f.DestinationAirportID, &f.DepartureTime, &f.ArrivalTime, &f.SeatsAvailable); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
