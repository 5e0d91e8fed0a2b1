package service

import (
	"context"
	"fmt"

	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Notify records a message for one user, or a broadcast when userID is nil.
func (s *NotificationService) Notify(ctx context.Context, userID *int64, notifType, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	items, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
