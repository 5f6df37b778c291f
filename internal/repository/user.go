package repository

import (
	"context"

	"yayayum/internal/models"

	"gorm.io/gorm"
)

const userResource = "User"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, id uint, input models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (err error) {
	ctx, end := traced(ctx, r.db, "users", "create")
	defer end(&err)

	user.ID = 0
	return mapStoreError(ctx, userResource, nil, r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) List(ctx context.Context) (users []models.User, err error) {
	ctx, end := traced(ctx, r.db, "users", "list")
	defer end(&err)

	users = []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, mapStoreError(ctx, userResource, nil, err)
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (user *models.User, err error) {
	ctx, end := traced(ctx, r.db, "users", "get")
	defer end(&err)

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, mapStoreError(ctx, userResource, id, err)
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, input models.UserInput) (user *models.User, err error) {
	ctx, end := traced(ctx, r.db, "users", "update")
	defer end(&err)

	next := input.ToUser()
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{"username": next.Username})
	if res.Error != nil {
		return nil, mapStoreError(ctx, userResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(userResource, id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the user; its ratings go with it through the foreign key cascade.
func (r *userRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := traced(ctx, r.db, "users", "delete")
	defer end(&err)

	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return mapStoreError(ctx, userResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(userResource, id)
	}
	return nil
}
