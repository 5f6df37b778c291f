package service

import (
	"context"
	"errors"
	"testing"

	"yayayum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn  func(context.Context, *models.User) error
	listFn    func(context.Context) ([]models.User, error)
	getByIDFn func(context.Context, uint) (*models.User, error)
	updateFn  func(context.Context, uint, models.UserInput) (*models.User, error)
	deleteFn  func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Update(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	return s.updateFn(ctx, id, in)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// dishRepoStub is a stub for repository.DishRepository.
type dishRepoStub struct {
	createFn  func(context.Context, *models.Dish) error
	listFn    func(context.Context) ([]models.Dish, error)
	getByIDFn func(context.Context, uint) (*models.Dish, error)
	updateFn  func(context.Context, uint, models.DishInput) (*models.Dish, error)
	deleteFn  func(context.Context, uint) error
}

func (s *dishRepoStub) Create(ctx context.Context, dish *models.Dish) error {
	return s.createFn(ctx, dish)
}
func (s *dishRepoStub) List(ctx context.Context) ([]models.Dish, error) {
	return s.listFn(ctx)
}
func (s *dishRepoStub) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	return s.getByIDFn(ctx, id)
}
func (s *dishRepoStub) Update(ctx context.Context, id uint, in models.DishInput) (*models.Dish, error) {
	return s.updateFn(ctx, id, in)
}
func (s *dishRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// ratingRepoStub is a stub for repository.RatingRepository.
type ratingRepoStub struct {
	createFn     func(context.Context, *models.Rating) error
	listFn       func(context.Context) ([]models.Rating, error)
	listByDishFn func(context.Context, uint) ([]models.Rating, error)
	listByUserFn func(context.Context, uint) ([]models.Rating, error)
	getByIDFn    func(context.Context, uint) (*models.Rating, error)
	updateFn     func(context.Context, uint, models.RatingInput) (*models.Rating, error)
	deleteFn     func(context.Context, uint) error
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) List(ctx context.Context) ([]models.Rating, error) {
	return s.listFn(ctx)
}
func (s *ratingRepoStub) ListByDish(ctx context.Context, dishID uint) ([]models.Rating, error) {
	return s.listByDishFn(ctx, dishID)
}
func (s *ratingRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *ratingRepoStub) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ratingRepoStub) Update(ctx context.Context, id uint, in models.RatingInput) (*models.Rating, error) {
	return s.updateFn(ctx, id, in)
}
func (s *ratingRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// failingRepoCall is installed on stubs that must not be reached.
func failingRepoCall(t *testing.T) func() {
	return func() {
		t.Helper()
		t.Fatal("repository must not be called")
	}
}

// assertKind asserts that err is an AppError of the given kind.
func assertKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, kind, appErr.Kind)
}
