package service

import (
	"context"

	"yayayum/internal/models"
	"yayayum/internal/repository"
	"yayayum/internal/validation"
)

type RatingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo}
}

// CreateRating checks the score and stores the rating. Whether the dish and
// user exist is decided by the store.
func (s *RatingService) CreateRating(ctx context.Context, in models.RatingInput) (*models.Rating, error) {
	if err := validation.ValidateRatingInput(in); err != nil {
		return nil, err
	}
	rating := in.ToRating()
	if err := s.ratingRepo.Create(ctx, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return s.ratingRepo.List(ctx)
}

func (s *RatingService) ListRatingsByDish(ctx context.Context, dishID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListByDish(ctx, dishID)
}

func (s *RatingService) ListRatingsByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListByUser(ctx, userID)
}

func (s *RatingService) GetRatingByID(ctx context.Context, id uint) (*models.Rating, error) {
	return s.ratingRepo.GetByID(ctx, id)
}

func (s *RatingService) UpdateRating(ctx context.Context, id uint, in models.RatingInput) (*models.Rating, error) {
	if err := validation.ValidateRatingInput(in); err != nil {
		return nil, err
	}
	return s.ratingRepo.Update(ctx, id, in)
}

func (s *RatingService) DeleteRating(ctx context.Context, id uint) error {
	return s.ratingRepo.Delete(ctx, id)
}
