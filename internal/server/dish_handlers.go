package server

import (
	"yayayum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateDish handles POST /dishes
// @Summary Create a dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param request body models.DishInput true "Dish"
// @Success 201 {object} models.Dish
// @Failure 400 {object} models.ErrorResponse
// @Router /dishes [post]
func (s *Server) CreateDish(c *fiber.Ctx) error {
	var in models.DishInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	dish, err := s.dishService.CreateDish(ctx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

// ListDishes handles GET /dishes
// @Summary List dishes
// @Tags dishes
// @Produce json
// @Success 200 {array} models.Dish
// @Failure 500 {object} models.ErrorResponse
// @Router /dishes [get]
func (s *Server) ListDishes(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	dishes, err := s.dishService.ListDishes(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dishes)
}

// GetDish handles GET /dishes/:id
// @Summary Get a dish
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} models.Dish
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [get]
func (s *Server) GetDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	dish, err := s.dishService.GetDishByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dish)
}

// UpdateDish handles PUT /dishes/:id
// @Summary Replace a dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param id path int true "Dish ID"
// @Param request body models.DishInput true "Dish"
// @Success 200 {object} models.Dish
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [put]
func (s *Server) UpdateDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.DishInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	dish, err := s.dishService.UpdateDish(ctx, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dish)
}

// DeleteDish handles DELETE /dishes/:id. Ratings of the dish are removed too.
// @Summary Delete a dish
// @Tags dishes
// @Param id path int true "Dish ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [delete]
func (s *Server) DeleteDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.dishService.DeleteDish(ctx, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
