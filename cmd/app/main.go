package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightbooking/config"
	"flightbooking/internal/bootstrap"
	"flightbooking/internal/cache"
	"flightbooking/internal/kafka"
	"flightbooking/internal/repository"
	"flightbooking/internal/service/airports"
	"flightbooking/internal/service/booking"
	"flightbooking/internal/service/flights"
	"flightbooking/pkg/logger"
	"flightbooking/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ReferenceTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	m := metrics.NewMetrics("flightbooking")

	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	deps := bootstrap.Deps{
		Airports: airports.NewAirportService(airportRepo, redisCache),
		Flights:  flights.NewFlightService(flightRepo, redisCache),
		Bookings: booking.NewBookingService(bookingRepo, producer, log,
			booking.WithEventsTopic(cfg.Kafka.BookingEventsTopic)),
		Logger:  log,
		Metrics: m,
	}

	if err := bootstrap.Run(ctx, cfg, deps); err != nil {
		log.Fatal("server error", "error", err)
	}
}
