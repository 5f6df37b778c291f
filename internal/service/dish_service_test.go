package service

import (
	"context"
	"testing"

	"yayayum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDishInput() models.DishInput {
	return models.DishInput{
		Nr:                  12,
		Name:                "Pad Thai",
		Description:         "Rice noodles, peanuts",
		PriceKr:             129,
		DietaryRestrictions: models.DietaryRestrictions{models.DietaryGlutenFree},
		Category:            models.CategoryWokWithNoodles,
	}
}

func TestDishService_CreateDish(t *testing.T) {
	t.Run("stores the dish", func(t *testing.T) {
		repo := &dishRepoStub{createFn: func(_ context.Context, d *models.Dish) error {
			d.ID = 3
			return nil
		}}
		svc := NewDishService(repo)

		dish, err := svc.CreateDish(context.Background(), validDishInput())
		require.NoError(t, err)
		assert.Equal(t, uint(3), dish.ID)
		assert.Equal(t, models.CategoryWokWithNoodles, dish.Category)
		assert.Equal(t, models.DietaryRestrictions{models.DietaryGlutenFree}, dish.DietaryRestrictions)
	})

	t.Run("missing restrictions become an empty list", func(t *testing.T) {
		repo := &dishRepoStub{createFn: func(context.Context, *models.Dish) error { return nil }}
		svc := NewDishService(repo)

		in := validDishInput()
		in.DietaryRestrictions = nil
		dish, err := svc.CreateDish(context.Background(), in)
		require.NoError(t, err)
		assert.NotNil(t, dish.DietaryRestrictions)
		assert.Empty(t, dish.DietaryRestrictions)
	})

	tests := []struct {
		name   string
		mutate func(*models.DishInput)
	}{
		{"negative price", func(in *models.DishInput) { in.PriceKr = -1 }},
		{"blank name", func(in *models.DishInput) { in.Name = " " }},
		{"unknown category", func(in *models.DishInput) { in.Category = "Soup" }},
		{"missing category", func(in *models.DishInput) { in.Category = "" }},
		{"unknown restriction", func(in *models.DishInput) {
			in.DietaryRestrictions = models.DietaryRestrictions{"Pescatarian"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fail := failingRepoCall(t)
			repo := &dishRepoStub{createFn: func(context.Context, *models.Dish) error { fail(); return nil }}
			svc := NewDishService(repo)

			in := validDishInput()
			tt.mutate(&in)
			_, err := svc.CreateDish(context.Background(), in)
			assertKind(t, err, models.KindValidation)
		})
	}
}

func TestDishService_UpdateDish(t *testing.T) {
	var gotID uint
	repo := &dishRepoStub{updateFn: func(_ context.Context, id uint, in models.DishInput) (*models.Dish, error) {
		gotID = id
		d := in.ToDish()
		d.ID = id
		return &d, nil
	}}
	svc := NewDishService(repo)

	in := validDishInput()
	in.PriceKr = 139
	dish, err := svc.UpdateDish(context.Background(), 5, in)
	require.NoError(t, err)
	assert.Equal(t, uint(5), gotID)
	assert.Equal(t, 139, dish.PriceKr)
}

func TestDishService_PropagatesStoreErrors(t *testing.T) {
	repo := &dishRepoStub{
		listFn: func(context.Context) ([]models.Dish, error) {
			return nil, models.NewCodecError(&models.CodecError{Input: "v1:Soup", Reason: "unknown dish category"})
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Dish, error) {
			return nil, models.NewNotFoundError("Dish", id)
		},
		deleteFn: func(_ context.Context, id uint) error {
			return models.NewNotFoundError("Dish", id)
		},
	}
	svc := NewDishService(repo)
	ctx := context.Background()

	_, err := svc.ListDishes(ctx)
	assertKind(t, err, models.KindCodec)

	_, err = svc.GetDishByID(ctx, 9)
	assertKind(t, err, models.KindNotFound)

	assertKind(t, svc.DeleteDish(ctx, 9), models.KindNotFound)
}
