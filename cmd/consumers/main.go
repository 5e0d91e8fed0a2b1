package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tvusm/cmd/consumers/handlers"
	"tvusm/cmd/consumers/jobs"
	"tvusm/internal/config"
	"tvusm/internal/consumers"
	"tvusm/internal/external"
	"tvusm/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	log.Println("Starting worker service...")

	// The API and the worker must not share a NATS client id
	cfg.NATS.ClientID = "tvusm-worker"

	consumerService, err := consumers.NewConsumerService(cfg)
	if err != nil {
		log.Fatalf("Failed to create consumer service: %v", err)
	}

	if err := consumerService.Start(); err != nil {
		log.Fatalf("Failed to start consumers: %v", err)
	}

	repos := consumerService.Repositories()
	paymentClient := external.NewPaymentClient(cfg.Payment)

	// Gateway reconciliation runs in its own queue group so it sees every
	// payment.initiated event regardless of the notification consumers.
	paymentSync := handlers.NewPaymentSyncHandler(paymentClient, repos.Bookings)
	if _, err := consumerService.NATS().SubscribeQueue("payment.initiated", "payment-sync", paymentSync.HandlePaymentInitiated); err != nil {
		log.Fatalf("Failed to subscribe payment sync handler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expirationJob := jobs.NewBookingExpirationJob(repos.Bookings, consumerService.NATS())
	expirationJob.Start(ctx)

	reminderJob := jobs.NewBookingReminderJob(repos.Bookings, repos.Notifications)
	reminderJob.Start(ctx)

	log.Println("Worker service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down worker service...")

	expirationJob.Stop()
	reminderJob.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := consumerService.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Worker service stopped")
}
