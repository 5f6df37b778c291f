package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"yayayum/internal/models"
	"yayayum/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	s, err := NewServerWithDeps(testutil.TestConfig(t.TempDir()), db, nil)
	require.NoError(t, err)
	return s.NewApp()
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = jsonRequest(method, target, body)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestNewServerWithDeps_RequiresDependencies(t *testing.T) {
	_, err := NewServerWithDeps(nil, nil, nil)
	assert.Error(t, err)

	_, err = NewServerWithDeps(testutil.TestConfig(t.TempDir()), nil, nil)
	assert.Error(t, err)
}

func TestAPI_Probes(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, World!", readBody(t, resp))
	_ = resp.Body.Close()

	var health struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/health", "", &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "disabled", health.Checks["redis"])
	assert.Equal(t, "sqlite", health.Checks["dialect"])

	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/health/live", "", nil))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/ratings/dish/{dishId}")
	_ = resp.Body.Close()

	var notFound models.ErrorResponse
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/nowhere", "", &notFound))
	assert.Equal(t, string(models.KindNotFound), notFound.Code)
}

func TestAPI_RatingLifecycle(t *testing.T) {
	app := newTestApp(t)

	var user models.User
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/users", `{"username":"mai"}`, &user))
	require.NotZero(t, user.ID)

	var dish models.Dish
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/dishes",
		`{"nr":21,"name":"Yaki Udon","description":"thick noodles","price_kr":135,
		  "dietary_restrictions":["Vegetarian","DairyFree"],"category":"WokWithNoodles"}`, &dish))
	assert.Equal(t, models.DietaryRestrictions{models.DietaryVegetarian, models.DietaryDairyFree}, dish.DietaryRestrictions)

	var fetched models.Dish
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, fmt.Sprintf("/dishes/%d", dish.ID), "", &fetched))
	assert.Equal(t, dish, fetched)

	ratingBody := func(score int) string {
		return fmt.Sprintf(`{"dish_id":%d,"user_id":%d,"rating":%d}`, dish.ID, user.ID, score)
	}

	var first, second models.Rating
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/ratings", ratingBody(4), &first))
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/ratings", ratingBody(5), &second))
	assert.False(t, first.Date.IsZero())
	assert.Greater(t, second.ID, first.ID)

	var all []models.Rating
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/ratings", "", &all))
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	var byUser []models.Rating
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, fmt.Sprintf("/ratings/user/%d", user.ID), "", &byUser))
	assert.Len(t, byUser, 2)

	var bad models.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodPost, "/ratings", ratingBody(6), &bad))
	assert.Equal(t, "rating out of range", bad.Error)

	var conflict models.ErrorResponse
	assert.Equal(t, http.StatusConflict, doJSON(t, app, http.MethodPost, "/ratings",
		fmt.Sprintf(`{"dish_id":99999,"user_id":%d,"rating":3}`, user.ID), &conflict))
	assert.Equal(t, string(models.KindReference), conflict.Code)

	var updated models.Rating
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPut, fmt.Sprintf("/ratings/%d", first.ID),
		fmt.Sprintf(`{"dish_id":%d,"user_id":%d,"rating":2,"photo":"https://img.example/1.jpg"}`, dish.ID, user.ID), &updated))
	assert.Equal(t, 2, updated.Rating)
	require.NotNil(t, updated.Photo)
	assert.True(t, first.Date.Equal(updated.Date))

	// Deleting the dish takes its ratings with it.
	assert.Equal(t, http.StatusNoContent, doJSON(t, app, http.MethodDelete, fmt.Sprintf("/dishes/%d", dish.ID), "", nil))

	var byDish []models.Rating
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, fmt.Sprintf("/ratings/dish/%d", dish.ID), "", &byDish))
	assert.NotNil(t, byDish)
	assert.Empty(t, byDish)

	var missing models.ErrorResponse
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, fmt.Sprintf("/ratings/%d", first.ID), "", &missing))
	assert.Equal(t, string(models.KindNotFound), missing.Code)
}

func TestAPI_UserAndDishEdits(t *testing.T) {
	app := newTestApp(t)

	var user models.User
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/users", `{"username":"kenji"}`, &user))

	var renamed models.User
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", user.ID),
		`{"username":"kenji2"}`, &renamed))
	assert.Equal(t, "kenji2", renamed.Username)

	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPut, "/users/999", `{"username":"x"}`, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, "/users/999", "", nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodGet, "/users/zero", "", nil))

	var users []models.User
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users", "", &users))
	assert.Equal(t, []models.User{renamed}, users)

	var dishes []models.Dish
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/dishes", "", &dishes))
	assert.NotNil(t, dishes)
	assert.Empty(t, dishes)

	assert.Equal(t, http.StatusNoContent, doJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), "", nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), "", nil))
}

func TestServerShutdown_LeavesSharedPoolOpen(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	s, err := NewServerWithDeps(testutil.TestConfig(t.TempDir()), db, nil)
	require.NoError(t, err)

	require.NoError(t, s.Shutdown(t.Context()), "shutdown before NewApp is a no-op")

	s.NewApp()
	require.NoError(t, s.Shutdown(t.Context()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(t.Context()), "the runtime owns the pool")
}
