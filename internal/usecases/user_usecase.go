package usecases

import (
	"context"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/domain/repositories"
)

// UserUsecase serves public profiles
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetPublicProfile returns a user without email or credentials.
func (u *UserUsecase) GetPublicProfile(ctx context.Context, rawID string) (*entities.PublicUser, error) {
	user, err := loadUser(ctx, u.userRepo, rawID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func loadUser(ctx context.Context, repo repositories.UserRepository, rawID string) (*entities.User, error) {
	id, err := parseID(rawID, MsgUserNotFound)
	if err != nil {
		return nil, err
	}
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, MsgUserNotFound)
	}
	return user, nil
}
