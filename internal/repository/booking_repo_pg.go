package repository

import (
	"context"
	"errors"

	"flightbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the postgres error code reported when an
// inserted booking references a nonexistent flight.
const foreignKeyViolation = "23503"

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id, flight_id, passenger_name, passenger_email, passenger_phone, booking_date FROM bookings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.FlightID, &b.PassengerName, &b.PassengerEmail, &b.PassengerPhone, &b.BookingDate); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT booking_id, flight_id, passenger_name, passenger_email, passenger_phone, booking_date FROM bookings WHERE booking_id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.PassengerName, &b.PassengerEmail, &b.PassengerPhone, &b.BookingDate); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts the booking as a single autocommit statement; the
// store generates booking_id and booking_date and checks the flight
// foreign key.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (flight_id, passenger_name, passenger_email, passenger_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING booking_id, booking_date`,
		booking.FlightID, booking.PassengerName, booking.PassengerEmail, booking.PassengerPhone).
		Scan(&booking.ID, &booking.BookingDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.ErrFlightNotFound
		}
		return err
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
