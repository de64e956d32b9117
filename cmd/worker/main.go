package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightbooking/config"
	"flightbooking/internal/cache"
	"flightbooking/internal/email"
	"flightbooking/internal/kafka"
	"flightbooking/internal/repository"
	"flightbooking/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// The worker consumes booking events and sends notification emails.
// It also re-warms the reference-data caches so the first page view
// after a cold start does not pay the database round trip.
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ReferenceTTLSeconds)*time.Second)
	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic, log)
	defer consumer.Close()

	sender := email.NewSender(log)

	go func() {
		if err := consumer.Consume(ctx, sender.Send); err != nil {
			log.Error("consumer stopped", "error", err)
		}
	}()

	refreshMinutes := cfg.Worker.CacheRefreshMinutes
	if refreshMinutes <= 0 {
		refreshMinutes = 5
	}
	refreshTicker := time.NewTicker(time.Duration(refreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-refreshTicker.C:
			refreshCaches(ctx, log, redisCache, airportRepo, flightRepo)
		case s := <-sig:
			log.Info("received signal, shutting down", "signal", s.String())
			return
		}
	}
}

func refreshCaches(ctx context.Context, log logger.Logger, c *cache.RedisCache, airportRepo repository.AirportRepository, flightRepo repository.FlightRepository) {
	if airports, err := airportRepo.List(ctx); err != nil {
		log.Error("refresh airports cache", "error", err)
	} else if err := c.SetAirports(ctx, airports); err != nil {
		log.Error("store airports cache", "error", err)
	}

	if flights, err := flightRepo.List(ctx); err != nil {
		log.Error("refresh flights cache", "error", err)
	} else if err := c.SetFlights(ctx, flights); err != nil {
		log.Error("store flights cache", "error", err)
	}
}
