package server

import (
	"context"

	"yayayum/internal/models"
	"yayayum/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDishRepository is a mock of the DishRepository interface
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) List(ctx context.Context) ([]models.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, id uint, in models.DishInput) (*models.Dish, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRatingRepository is a mock of the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) List(ctx context.Context) ([]models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByDish(ctx context.Context, dishID uint) ([]models.Rating, error) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Update(ctx context.Context, id uint, in models.RatingInput) (*models.Rating, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockServer wires the three mocks behind real services.
func mockServer() (*Server, *MockUserRepository, *MockDishRepository, *MockRatingRepository) {
	users := new(MockUserRepository)
	dishes := new(MockDishRepository)
	ratings := new(MockRatingRepository)
	s := &Server{
		userRepo:      users,
		dishRepo:      dishes,
		ratingRepo:    ratings,
		userService:   service.NewUserService(users),
		dishService:   service.NewDishService(dishes),
		ratingService: service.NewRatingService(ratings),
	}
	return s, users, dishes, ratings
}
