package service

import (
	"context"

	"yayayum/internal/models"
	"yayayum/internal/repository"
	"yayayum/internal/validation"
)

type DishService struct {
	dishRepo repository.DishRepository
}

func NewDishService(dishRepo repository.DishRepository) *DishService {
	return &DishService{dishRepo: dishRepo}
}

func (s *DishService) CreateDish(ctx context.Context, in models.DishInput) (*models.Dish, error) {
	if err := validation.ValidateDishInput(in); err != nil {
		return nil, err
	}
	dish := in.ToDish()
	if err := s.dishRepo.Create(ctx, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *DishService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishRepo.List(ctx)
}

func (s *DishService) GetDishByID(ctx context.Context, id uint) (*models.Dish, error) {
	return s.dishRepo.GetByID(ctx, id)
}

func (s *DishService) UpdateDish(ctx context.Context, id uint, in models.DishInput) (*models.Dish, error) {
	if err := validation.ValidateDishInput(in); err != nil {
		return nil, err
	}
	return s.dishRepo.Update(ctx, id, in)
}

func (s *DishService) DeleteDish(ctx context.Context, id uint) error {
	return s.dishRepo.Delete(ctx, id)
}
