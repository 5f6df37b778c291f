package repository

import (
	"context"

	"yayayum/internal/models"

	"gorm.io/gorm"
)

const dishResource = "Dish"

// DishRepository defines persistence operations for dishes.
type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	List(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id uint) (*models.Dish, error)
	Update(ctx context.Context, id uint, input models.DishInput) (*models.Dish, error)
	Delete(ctx context.Context, id uint) error
}

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository returns a new DishRepository implementation.
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(ctx context.Context, dish *models.Dish) (err error) {
	ctx, end := traced(ctx, r.db, "dishes", "create")
	defer end(&err)

	dish.ID = 0
	if dish.DietaryRestrictions == nil {
		dish.DietaryRestrictions = models.DietaryRestrictions{}
	}
	return mapStoreError(ctx, dishResource, nil, r.db.WithContext(ctx).Create(dish).Error)
}

func (r *dishRepository) List(ctx context.Context) (dishes []models.Dish, err error) {
	ctx, end := traced(ctx, r.db, "dishes", "list")
	defer end(&err)

	dishes = []models.Dish{}
	if err := r.db.WithContext(ctx).Order("id").Find(&dishes).Error; err != nil {
		return nil, mapStoreError(ctx, dishResource, nil, err)
	}
	return dishes, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id uint) (dish *models.Dish, err error) {
	ctx, end := traced(ctx, r.db, "dishes", "get")
	defer end(&err)

	var d models.Dish
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, mapStoreError(ctx, dishResource, id, err)
	}
	return &d, nil
}

// Update overwrites every mutable column in one statement.
func (r *dishRepository) Update(ctx context.Context, id uint, input models.DishInput) (dish *models.Dish, err error) {
	ctx, end := traced(ctx, r.db, "dishes", "update")
	defer end(&err)

	next := input.ToDish()
	res := r.db.WithContext(ctx).Model(&models.Dish{}).Where("id = ?", id).
		Updates(map[string]any{
			"nr":                   next.Nr,
			"name":                 next.Name,
			"description":          next.Description,
			"price_kr":             next.PriceKr,
			"dietary_restrictions": next.DietaryRestrictions,
			"category":             next.Category,
		})
	if res.Error != nil {
		return nil, mapStoreError(ctx, dishResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(dishResource, id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the dish; ratings of it go with it through the foreign key cascade.
func (r *dishRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := traced(ctx, r.db, "dishes", "delete")
	defer end(&err)

	res := r.db.WithContext(ctx).Delete(&models.Dish{}, id)
	if res.Error != nil {
		return mapStoreError(ctx, dishResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(dishResource, id)
	}
	return nil
}
