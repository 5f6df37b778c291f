package repository

import (
	"context"
	"time"

	"yayayum/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ratingResource = "Rating"

// RatingRepository defines persistence operations for ratings. Every list is
// ordered newest first.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	List(ctx context.Context) ([]models.Rating, error)
	ListByDish(ctx context.Context, dishID uint) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Rating, error)
	GetByID(ctx context.Context, id uint) (*models.Rating, error)
	Update(ctx context.Context, id uint, input models.RatingInput) (*models.Rating, error)
	Delete(ctx context.Context, id uint) error
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create inserts the rating. The id and date are assigned by the store, never
// taken from the caller; both are returned by the INSERT.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) (err error) {
	ctx, end := traced(ctx, r.db, "ratings", "create")
	defer end(&err)

	rating.ID = 0
	rating.Date = time.Time{}
	typedReturning := r.db.Dialector.Name() == "postgres"
	returning := clause.Returning{Columns: []clause.Column{{Name: "id"}}}
	if typedReturning {
		returning.Columns = append(returning.Columns, clause.Column{Name: "date"})
	}

	db := r.db.WithContext(ctx)
	if err = db.Omit("date", clause.Associations).Clauses(returning).Create(rating).Error; err != nil {
		return mapStoreError(ctx, ratingResource, nil, err)
	}
	if !typedReturning {
		// SQLite hands RETURNING values back untyped; read the stored column.
		err = db.Select("date").Take(rating, rating.ID).Error
	}
	return mapStoreError(ctx, ratingResource, nil, err)
}

func (r *ratingRepository) List(ctx context.Context) (ratings []models.Rating, err error) {
	ctx, end := traced(ctx, r.db, "ratings", "list")
	defer end(&err)

	return r.find(ctx, r.db.WithContext(ctx))
}

// ListByDish returns the dish's ratings; an unknown dish yields an empty list.
func (r *ratingRepository) ListByDish(ctx context.Context, dishID uint) (ratings []models.Rating, err error) {
	ctx, end := traced(ctx, r.db, "ratings", "list_by_dish")
	defer end(&err)

	return r.find(ctx, r.db.WithContext(ctx).Where("dish_id = ?", dishID))
}

// ListByUser returns the user's ratings; an unknown user yields an empty list.
func (r *ratingRepository) ListByUser(ctx context.Context, userID uint) (ratings []models.Rating, err error) {
	ctx, end := traced(ctx, r.db, "ratings", "list_by_user")
	defer end(&err)

	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ratingRepository) find(ctx context.Context, q *gorm.DB) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if err := q.Clauses(newestFirst).Find(&ratings).Error; err != nil {
		return nil, mapStoreError(ctx, ratingResource, nil, err)
	}
	return ratings, nil
}

func (r *ratingRepository) GetByID(ctx context.Context, id uint) (rating *models.Rating, err error) {
	ctx, end := traced(ctx, r.db, "ratings", "get")
	defer end(&err)

	var rt models.Rating
	if err := r.db.WithContext(ctx).First(&rt, id).Error; err != nil {
		return nil, mapStoreError(ctx, ratingResource, id, err)
	}
	return &rt, nil
}

// Update overwrites everything except id and date in one statement.
func (r *ratingRepository) Update(ctx context.Context, id uint, input models.RatingInput) (rating *models.Rating, err error) {
	ctx, end := traced(ctx, r.db, "ratings", "update")
	defer end(&err)

	res := r.db.WithContext(ctx).Model(&models.Rating{}).Where("id = ?", id).
		Updates(map[string]any{
			"dish_id":     input.DishID,
			"rating":      input.Rating,
			"user_id":     input.UserID,
			"description": input.Description,
			"photo":       input.Photo,
		})
	if res.Error != nil {
		return nil, mapStoreError(ctx, ratingResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(ratingResource, id)
	}
	return r.GetByID(ctx, id)
}

func (r *ratingRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := traced(ctx, r.db, "ratings", "delete")
	defer end(&err)

	res := r.db.WithContext(ctx).Delete(&models.Rating{}, id)
	if res.Error != nil {
		return mapStoreError(ctx, ratingResource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(ratingResource, id)
	}
	return nil
}
