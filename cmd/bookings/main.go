package main

import (
	"atlaz/internal/bookings/events"
	"atlaz/internal/bookings/handler"
	"atlaz/internal/bookings/repository"
	"atlaz/internal/bookings/service"
	"atlaz/internal/bookings/validator"
	"atlaz/pkg/app"
	"atlaz/pkg/config"
	"atlaz/pkg/kafka"
	"atlaz/pkg/model"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	cfg.Log.Info("Starting Bookings service")
	publisher := initPublisher(cfg)
	bookingService := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.OnShutdown(publisher)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking events enabled", "topic", producer.Topic(), "brokers", cfg.Kafka.Brokers)
	return events.NewKafkaPublisher(producer, ServiceName)
}

func initServices(cfg *config.Config, publisher events.Publisher) service.BookingService {
	var seed []model.Booking
	if cfg.SeedBookings {
		seed = repository.SeedBookings()
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewInMemoryBookingRepository(seed...)
	bookingService := service.NewBookingService(
		bookingRepo,
		bookingValidator,
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Booking service initialized", "seeded", len(seed))
	return bookingService
}
