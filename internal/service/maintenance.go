package service

import (
	"context"
	"fmt"
	"time"

	"tvusm/internal/apperror"
	"tvusm/internal/logger"
	"tvusm/internal/messaging"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	courtRepo       *repository.CourtRepository
	natsClient      *messaging.NATSClient
}

func NewMaintenanceService(maintenanceRepo *repository.MaintenanceRepository, courtRepo *repository.CourtRepository, natsClient *messaging.NATSClient) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		courtRepo:       courtRepo,
		natsClient:      natsClient,
	}
}

func (s *MaintenanceService) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.Maintenance, error) {
	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}

	m := &models.Maintenance{
		CourtID:       req.CourtID,
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Status:        models.MaintenanceScheduled,
	}

	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create maintenance: %w", err)
	}

	event := models.MaintenanceScheduledEvent{
		MaintenanceID: m.ID,
		CourtID:       m.CourtID,
		ScheduledDate: m.ScheduledDate,
		Timestamp:     time.Now(),
	}

	if err := s.natsClient.Publish(models.EventMaintenanceScheduled, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish maintenance scheduled event",
			"error", err,
			"maintenance_id", m.ID,
			"event_type", "maintenance.scheduled")
	}

	return m, nil
}

func (s *MaintenanceService) GetByID(ctx context.Context, id int64) (*models.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	if m == nil {
		return nil, apperror.NotFound("maintenance")
	}
	return m, nil
}

func (s *MaintenanceService) List(ctx context.Context, courtID int64, status string) ([]models.Maintenance, error) {
	items, err := s.maintenanceRepo.List(ctx, courtID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}
	return items, nil
}

// UpdateStatus moves a maintenance job through its lifecycle. Starting the
// work takes the court out of the bookable pool; finishing or cancelling it
// puts the court back.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateMaintenanceRequest) (*models.Maintenance, error) {
	if req.Status == nil {
		return nil, apperror.InvalidRequest("status is required")
	}
	if !req.Status.IsValid() {
		return nil, apperror.InvalidRequest(fmt.Sprintf("invalid maintenance status %q", *req.Status))
	}

	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	if m == nil {
		return nil, apperror.NotFound("maintenance")
	}

	if !m.Status.CanTransitionTo(*req.Status) {
		return nil, apperror.InvalidRequest(fmt.Sprintf("cannot change maintenance from %s to %s", m.Status, *req.Status))
	}

	if err := s.maintenanceRepo.UpdateStatus(ctx, id, *req.Status); err != nil {
		return nil, fmt.Errorf("failed to update maintenance: %w", err)
	}
	m.Status = *req.Status

	var courtStatus models.CourtStatus
	switch *req.Status {
	case models.MaintenanceInProgress:
		courtStatus = models.CourtMaintenance
	case models.MaintenanceCompleted, models.MaintenanceCancelled:
		courtStatus = models.CourtAvailable
	}

	if courtStatus != "" {
		if err := s.courtRepo.UpdateStatus(ctx, m.CourtID, courtStatus); err != nil {
			return nil, fmt.Errorf("failed to update court status: %w", err)
		}
	}

	return m, nil
}
