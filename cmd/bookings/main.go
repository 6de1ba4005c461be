package main

import (
	"context"

	"rechargetravels/internal/bookings/enrich"
	"rechargetravels/internal/bookings/handler"
	"rechargetravels/internal/bookings/repository"
	"rechargetravels/internal/bookings/service"
	"rechargetravels/internal/bookings/validator"
	"rechargetravels/pkg/app"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	"rechargetravels/pkg/kafka"
	kafka_config "rechargetravels/pkg/kafka/config"
	"rechargetravels/pkg/model"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Bookings service")
	cfg.SetMongo()

	producer := initProducer(cfg)
	dashboard := initServices(cfg, producer)

	ctx, cancel := context.WithCancel(context.Background())
	if err := dashboard.Refresh(ctx); err != nil {
		cfg.Log.Error("Initial dashboard load failed, continuing with empty snapshot", "error", err)
	}
	dashboard.StartPolling(ctx)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(dashboard, cfg.Log))
	serverApp.OnShutdown(func() {
		dashboard.StopPolling()
		cancel()
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	producer, err := kafka.NewProducer(kafkaCfg, model.TopicBookingEvents, model.TopicBookingEventsDLQ)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.DashboardService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lookup := repository.NewMongoRelatedLookup(cfg)
	enricher := enrich.NewEnricher(lookup, cfg.Log)

	dashboard := service.NewDashboardService(
		bookingRepo,
		enricher,
		bookingValidator,
		producer,
		clock.System(),
		cfg,
	)

	cfg.Log.Info("Dashboard service initialized",
		"database", cfg.MongoDatabaseName,
		"poll_interval", cfg.DashboardPollInterval)
	return dashboard
}
