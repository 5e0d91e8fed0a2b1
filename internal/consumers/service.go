package consumers

import (
	"context"
	"log/slog"

	"tvusm/internal/config"
	"tvusm/internal/database"
	"tvusm/internal/messaging"
	"tvusm/internal/repository"
)

type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: NewHandlers(repos),
	}, nil
}

func (cs *ConsumerService) Repositories() *repository.Repositories {
	return cs.repos
}

func (cs *ConsumerService) NATS() *messaging.NATSClient {
	return cs.nats
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	if _, err := cs.nats.SubscribeQueue("booking.created", "consumers", cs.handlers.HandleBookingCreated); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue("booking.cancelled", "consumers", cs.handlers.HandleBookingCancelled); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue("payment.completed", "consumers", cs.handlers.HandlePaymentCompleted); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue("payment.failed", "consumers", cs.handlers.HandlePaymentFailed); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue("maintenance.scheduled", "consumers", cs.handlers.HandleMaintenanceScheduled); err != nil {
		return err
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
