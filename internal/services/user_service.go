package services

import (
	"context"

	"okoloBack/internal/models"
	"okoloBack/internal/repositories"
)

type UserService struct {
	UserRepo *repositories.UserRepository
}

func (s *UserService) GetProfile(ctx context.Context, userID int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int, upd models.ProfileUpdate) (models.User, error) {
	if upd.Location != nil && !upd.Location.Valid() {
		return models.User{}, models.ErrInvalidCoordinates
	}
	return s.UserRepo.UpdateProfile(ctx, userID, upd)
}
