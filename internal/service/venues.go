package service

import (
	"context"
	"fmt"

	"tvusm/internal/apperror"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type VenueService struct {
	venueRepo *repository.VenueRepository
}

func NewVenueService(venueRepo *repository.VenueRepository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.Venue, error) {
	venue := &models.Venue{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Status:      "active",
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue")
	}
	return venue, nil
}

func (s *VenueService) List(ctx context.Context) ([]models.Venue, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

func (s *VenueService) Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue")
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Location != nil {
		venue.Location = req.Location
	}
	if req.Description != nil {
		venue.Description = req.Description
	}
	if req.Status != nil {
		venue.Status = *req.Status
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	return venue, nil
}
