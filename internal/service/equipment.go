package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tvusm/internal/apperror"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type EquipmentService struct {
	equipmentRepo *repository.EquipmentRepository
	venueRepo     *repository.VenueRepository
	bookingRepo   *repository.BookingRepository
}

func NewEquipmentService(equipmentRepo *repository.EquipmentRepository, venueRepo *repository.VenueRepository, bookingRepo *repository.BookingRepository) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		venueRepo:     venueRepo,
		bookingRepo:   bookingRepo,
	}
}

func (s *EquipmentService) Create(ctx context.Context, req *models.CreateEquipmentRequest) (*models.Equipment, error) {
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue")
	}

	eq := &models.Equipment{
		VenueID:           req.VenueID,
		Name:              req.Name,
		Code:              req.Code,
		Quantity:          req.Quantity,
		AvailableQuantity: req.Quantity,
		RentalFee:         req.RentalFee,
		Status:            "available",
	}

	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperror.Conflict(fmt.Sprintf("equipment code %q already exists", req.Code))
		}
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return eq, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if eq == nil {
		return nil, apperror.NotFound("equipment")
	}
	return eq, nil
}

func (s *EquipmentService) List(ctx context.Context, venueID int64) ([]models.Equipment, error) {
	items, err := s.equipmentRepo.List(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return items, nil
}

func (s *EquipmentService) Update(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if eq == nil {
		return nil, apperror.NotFound("equipment")
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Quantity != nil {
		rented := eq.Quantity - eq.AvailableQuantity
		if *req.Quantity < rented {
			return nil, apperror.InvalidRequest(fmt.Sprintf("%d units are currently rented out", rented))
		}
		eq.AvailableQuantity += *req.Quantity - eq.Quantity
		eq.Quantity = *req.Quantity
	}
	if req.RentalFee != nil {
		eq.RentalFee = *req.RentalFee
	}
	if req.Status != nil {
		eq.Status = *req.Status
	}

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	return eq, nil
}

// Rent hands out equipment, optionally tied to a booking. The fee is the
// per-item fee times quantity; stock is decremented atomically in the
// repository.
func (s *EquipmentService) Rent(ctx context.Context, req *models.CreateRentalRequest) (*models.EquipmentRental, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if eq == nil {
		return nil, apperror.NotFound("equipment")
	}

	if req.Quantity <= 0 {
		return nil, apperror.InvalidRequest("quantity must be positive")
	}

	if req.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to get booking: %w", err)
		}
		if booking == nil {
			return nil, apperror.NotFound("booking")
		}
	}

	rental := &models.EquipmentRental{
		EquipmentID: req.EquipmentID,
		BookingID:   req.BookingID,
		Quantity:    req.Quantity,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      "active",
		TotalFee:    eq.RentalFee * int64(req.Quantity),
	}

	if err := s.equipmentRepo.CreateRental(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, apperror.Conflict(err.Error())
		}
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}

	return rental, nil
}

func (s *EquipmentService) Return(ctx context.Context, rentalID int64) error {
	err := s.equipmentRepo.ReturnRental(ctx, rentalID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("rental")
	}
	if err != nil {
		return fmt.Errorf("failed to return rental: %w", err)
	}
	return nil
}
