package service

import (
	"context"
	"fmt"

	"tvusm/internal/apperror"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type CourtService struct {
	courtRepo   *repository.CourtRepository
	venueRepo   *repository.VenueRepository
	mappingRepo *repository.CourtMappingRepository
}

func NewCourtService(courtRepo *repository.CourtRepository, venueRepo *repository.VenueRepository, mappingRepo *repository.CourtMappingRepository) *CourtService {
	return &CourtService{
		courtRepo:   courtRepo,
		venueRepo:   venueRepo,
		mappingRepo: mappingRepo,
	}
}

func (s *CourtService) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.Court, error) {
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue")
	}

	court := &models.Court{
		VenueID:     req.VenueID,
		Name:        req.Name,
		Code:        req.Code,
		Type:        req.Type,
		HourlyRate:  req.HourlyRate,
		Status:      models.CourtAvailable,
		Description: req.Description,
	}

	if err := s.courtRepo.Create(ctx, court); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperror.Conflict(fmt.Sprintf("court code %q already exists", req.Code))
		}
		return nil, fmt.Errorf("failed to create court: %w", err)
	}

	return court, nil
}

func (s *CourtService) GetByID(ctx context.Context, id int64) (*models.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}
	return court, nil
}

func (s *CourtService) List(ctx context.Context, filter models.CourtFilter) ([]models.Court, error) {
	courts, err := s.courtRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	return courts, nil
}

func (s *CourtService) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Type != nil {
		court.Type = *req.Type
	}
	if req.HourlyRate != nil {
		court.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperror.InvalidRequest(fmt.Sprintf("invalid court status %q", *req.Status))
		}
		court.Status = *req.Status
	}
	if req.Description != nil {
		court.Description = req.Description
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to update court: %w", err)
	}

	return court, nil
}

// Related returns the courts whose time slots contend with the given court:
// both sides of every mapping row plus the court itself.
func (s *CourtService) Related(ctx context.Context, id int64) ([]models.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}

	ids, err := s.mappingRepo.RelatedCourtIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve related courts: %w", err)
	}

	courts := make([]models.Court, 0, len(ids))
	for _, relatedID := range ids {
		related, err := s.courtRepo.GetByID(ctx, relatedID)
		if err != nil {
			return nil, fmt.Errorf("failed to get court %d: %w", relatedID, err)
		}
		if related != nil {
			courts = append(courts, *related)
		}
	}

	return courts, nil
}
