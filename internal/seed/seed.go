// Package seed fills a database with a demo menu, fake users and ratings.
// It is intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"yayayum/internal/database"
	"yayayum/internal/middleware"
	"yayayum/internal/models"
	"yayayum/internal/repository"
	"yayayum/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	RatingsPerUser int
	ShouldClean    bool
	// MenuPath overrides the embedded menu when set.
	MenuPath string
	// RandomSeed makes the fake data reproducible; 0 picks a random seed.
	RandomSeed int64
}

// Summary reports how many rows a run created.
type Summary struct {
	Users   int
	Dishes  int
	Ratings int
}

// Seed populates the database through the same services the API uses, so
// every row passes the usual checks and the column codec.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	var sum Summary

	menu, err := loadMenu(opts.MenuPath)
	if err != nil {
		return sum, err
	}

	if opts.ShouldClean {
		if err := clearData(ctx, db); err != nil {
			return sum, fmt.Errorf("clear data: %w", err)
		}
	}

	faker := gofakeit.New(opts.RandomSeed)
	users := service.NewUserService(repository.NewUserRepository(db))
	dishes := service.NewDishService(repository.NewDishRepository(db))
	ratings := service.NewRatingService(repository.NewRatingRepository(db))

	createdDishes := make([]*models.Dish, 0, len(menu))
	for _, in := range menu {
		d, err := dishes.CreateDish(ctx, in)
		if err != nil {
			return sum, fmt.Errorf("create dish %q: %w", in.Name, err)
		}
		createdDishes = append(createdDishes, d)
	}
	sum.Dishes = len(createdDishes)

	for i := 0; i < opts.NumUsers; i++ {
		u, err := users.CreateUser(ctx, models.UserInput{Username: faker.Username()})
		if err != nil {
			return sum, fmt.Errorf("create user: %w", err)
		}
		sum.Users++

		if len(createdDishes) == 0 {
			continue
		}
		for j := 0; j < opts.RatingsPerUser; j++ {
			dish := createdDishes[faker.Number(0, len(createdDishes)-1)]
			if _, err := ratings.CreateRating(ctx, fakeRating(faker, dish.ID, u.ID)); err != nil {
				return sum, fmt.Errorf("create rating: %w", err)
			}
			sum.Ratings++
		}
	}

	middleware.Logger.InfoContext(ctx, "database seeded",
		slog.Int("users", sum.Users),
		slog.Int("dishes", sum.Dishes),
		slog.Int("ratings", sum.Ratings),
	)
	return sum, nil
}

func loadMenu(path string) ([]models.DishInput, error) {
	if path == "" {
		return DefaultMenu()
	}
	return LoadMenuFile(path)
}

func fakeRating(faker *gofakeit.Faker, dishID, userID uint) models.RatingInput {
	in := models.RatingInput{
		DishID: dishID,
		UserID: userID,
		Rating: faker.Number(1, 5),
	}
	if faker.Bool() {
		desc := faker.Sentence(8)
		in.Description = &desc
	}
	if faker.Number(1, 4) == 1 {
		photo := faker.ImageURL(640, 480)
		in.Photo = &photo
	}
	return in
}

// clearData removes every row; ratings go first so the foreign keys hold.
func clearData(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == database.DialectPostgres {
		return db.WithContext(ctx).Exec(`TRUNCATE TABLE ratings, dishes, users RESTART IDENTITY CASCADE`).Error
	}
	for _, table := range []string{"ratings", "dishes", "users"} {
		if err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
