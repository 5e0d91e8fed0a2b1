package service

import (
	"context"
	"fmt"

	"tvusm/internal/apperror"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type MappingService struct {
	mappingRepo *repository.CourtMappingRepository
	courtRepo   *repository.CourtRepository
}

func NewMappingService(mappingRepo *repository.CourtMappingRepository, courtRepo *repository.CourtRepository) *MappingService {
	return &MappingService{
		mappingRepo: mappingRepo,
		courtRepo:   courtRepo,
	}
}

// Create links a child court to its parent. Both courts must exist, a court
// cannot map to itself, and a child may belong to at most one parent; the
// last two are also enforced by table constraints, surfaced here as
// conflicts.
func (s *MappingService) Create(ctx context.Context, req *models.CreateCourtMappingRequest) (*models.CourtMapping, error) {
	if req.ParentCourtID == req.ChildCourtID {
		return nil, apperror.InvalidRequest("a court cannot be mapped to itself")
	}

	for _, id := range []int64{req.ParentCourtID, req.ChildCourtID} {
		court, err := s.courtRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get court: %w", err)
		}
		if court == nil {
			return nil, apperror.NotFound(fmt.Sprintf("court %d", id))
		}
	}

	mapping := &models.CourtMapping{
		ParentCourtID: req.ParentCourtID,
		ChildCourtID:  req.ChildCourtID,
		Position:      req.Position,
	}

	if err := s.mappingRepo.Create(ctx, mapping); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperror.Conflict("mapping already exists or child court is already mapped")
		}
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}

	return mapping, nil
}

func (s *MappingService) ListByCourt(ctx context.Context, courtID int64) ([]models.CourtMapping, error) {
	mappings, err := s.mappingRepo.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}

func (s *MappingService) Delete(ctx context.Context, id int64) error {
	mapping, err := s.mappingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get mapping: %w", err)
	}
	if mapping == nil {
		return apperror.NotFound("mapping")
	}

	if err := s.mappingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}

	return nil
}
