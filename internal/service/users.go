package service

import (
	"context"

	"tvusm/internal/apperror"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrapf(err, "getting user %d", userID)
	}
	if user == nil || !user.IsActive {
		return nil, apperror.NotFound("user")
	}
	return user, nil
}
