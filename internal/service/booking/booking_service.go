package booking

import (
	"context"
	"strconv"
	"strings"

	"flightbooking/internal/domain"
	"flightbooking/internal/kafka"
	"flightbooking/internal/repository"
	"flightbooking/pkg/logger"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings    repository.BookingRepository
	producer    Producer
	eventsTopic string
	log         logger.Logger
}

type CreateBookingInput struct {
	FlightID       int64  `json:"flight_id"`
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email"`
	PassengerPhone string `json:"passenger_phone"`
}

type BookingServiceOption func(*BookingService)

func WithEventsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.eventsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, log logger.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		producer: producer,
		log:      log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the required passenger fields and inserts
// the booking. The flight foreign key is checked by the store, not
// here; a violation surfaces as domain.ErrFlightNotFound.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.FlightID == 0 || strings.TrimSpace(input.PassengerName) == "" || strings.TrimSpace(input.PassengerEmail) == "" {
		return nil, domain.ErrMissingFields
	}

	booking := &domain.Booking{
		FlightID:       input.FlightID,
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
	}
	if phone := strings.TrimSpace(input.PassengerPhone); phone != "" {
		booking.PassengerPhone = &phone
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		s.log.Warn("failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		FlightID:       booking.FlightID,
		PassengerName:  booking.PassengerName,
		PassengerEmail: booking.PassengerEmail,
		BookingDate:    booking.BookingDate,
	}
	return s.producer.Publish(ctx, s.eventsTopic, strconv.FormatInt(booking.ID, 10), event)
}

var _ BookingUseCase = (*BookingService)(nil)
