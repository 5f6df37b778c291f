package server

import (
	"yayayum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRating handles POST /ratings. The date is assigned by the store.
// @Summary Rate a dish
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body models.RatingInput true "Rating"
// @Success 201 {object} models.Rating
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /ratings [post]
func (s *Server) CreateRating(c *fiber.Ctx) error {
	var in models.RatingInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := s.ratingService.CreateRating(ctx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

// ListRatings handles GET /ratings
// @Summary List ratings, newest first
// @Tags ratings
// @Produce json
// @Success 200 {array} models.Rating
// @Router /ratings [get]
func (s *Server) ListRatings(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	ratings, err := s.ratingService.ListRatings(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// ListRatingsByDish handles GET /ratings/dish/:dishId
// @Summary List the ratings of a dish, newest first
// @Tags ratings
// @Produce json
// @Param dishId path int true "Dish ID"
// @Success 200 {array} models.Rating
// @Router /ratings/dish/{dishId} [get]
func (s *Server) ListRatingsByDish(c *fiber.Ctx) error {
	dishID, err := s.parseID(c, "dishId")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ratings, err := s.ratingService.ListRatingsByDish(ctx, dishID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// ListRatingsByUser handles GET /ratings/user/:userId
// @Summary List the ratings written by a user, newest first
// @Tags ratings
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Rating
// @Router /ratings/user/{userId} [get]
func (s *Server) ListRatingsByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ratings, err := s.ratingService.ListRatingsByUser(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// GetRating handles GET /ratings/:id
// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} models.Rating
// @Failure 404 {object} models.ErrorResponse
// @Router /ratings/{id} [get]
func (s *Server) GetRating(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := s.ratingService.GetRatingByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

// UpdateRating handles PUT /ratings/:id. The original date is kept.
// @Summary Replace a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Rating ID"
// @Param request body models.RatingInput true "Rating"
// @Success 200 {object} models.Rating
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /ratings/{id} [put]
func (s *Server) UpdateRating(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.RatingInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := s.ratingService.UpdateRating(ctx, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

// DeleteRating handles DELETE /ratings/:id
// @Summary Delete a rating
// @Tags ratings
// @Param id path int true "Rating ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /ratings/{id} [delete]
func (s *Server) DeleteRating(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.ratingService.DeleteRating(ctx, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
