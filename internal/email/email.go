package email

import (
	"context"
	"fmt"

	"flightbooking/internal/kafka"
	"flightbooking/pkg/logger"
)

// Sender delivers booking confirmations. The transport is a log line
// for now; the worker owns the only call site.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	subject := fmt.Sprintf("Booking #%d confirmed", event.BookingID)
	s.log.Info("send email",
		"to", event.PassengerEmail,
		"subject", subject,
		"flight_id", event.FlightID,
	)
	return nil
}
