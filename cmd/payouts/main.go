package main

import (
	"context"
	"errors"

	"rechargetravels/internal/payouts/handler"
	"rechargetravels/internal/payouts/repository"
	"rechargetravels/internal/payouts/service"
	"rechargetravels/pkg/app"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	"rechargetravels/pkg/kafka"
	kafka_config "rechargetravels/pkg/kafka/config"
	"rechargetravels/pkg/model"
)

const (
	ServiceName   = "payouts"
	ConsumerGroup = "payouts-schedule-builder"
)

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Payouts service")
	cfg.SetMongo()

	payoutRepo := repository.NewMongoScheduleRepository(cfg)
	payoutService := service.NewPayoutService(payoutRepo, clock.System(), cfg)

	consumer := initConsumer(cfg, payoutService)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			cfg.Log.Error("Booking event consumer stopped", "error", err)
		}
	}()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewPayoutHandler(payoutService, cfg.Log))
	serverApp.OnShutdown(func() {
		cancel()
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka consumer", "error", err)
		}
	})
	serverApp.Run()
}

func initConsumer(cfg *config.Config, payoutService service.PayoutService) *kafka.Consumer {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		model.TopicBookingEvents,
		ConsumerGroup,
		model.TopicBookingEventsDLQ,
		payoutService.HandleBookingEvent,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	return consumer
}
