// Package service applies the constraint layer in front of the entity store.
package service

import (
	"context"

	"yayayum/internal/models"
	"yayayum/internal/repository"
	"yayayum/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.ValidateUserInput(in); err != nil {
		return nil, err
	}
	user := in.ToUser()
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	if err := validation.ValidateUserInput(in); err != nil {
		return nil, err
	}
	return s.userRepo.Update(ctx, id, in)
}

// DeleteUser removes the user together with every rating they wrote.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
