// Package server contains the HTTP handlers for the menu API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "yayayum/docs" // swagger docs
	"yayayum/internal/config"
	"yayayum/internal/middleware"
	"yayayum/internal/models"
	"yayayum/internal/repository"
	"yayayum/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultOrigins = "http://localhost:5173"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	dishRepo       repository.DishRepository
	ratingRepo     repository.RatingRepository
	userService    *service.UserService
	dishService    *service.DishService
	ratingService  *service.RatingService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// The pool behind db is shared by every repository; redisClient may be nil.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	if db == nil {
		return nil, errors.New("server: nil database")
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("yayayum-api"),
		userRepo:       repository.NewUserRepository(db),
		dishRepo:       repository.NewDishRepository(db),
		ratingRepo:     repository.NewRatingRepository(db),
	}
	s.userService = service.NewUserService(s.userRepo)
	s.dishService = service.NewDishService(s.dishRepo)
	s.ratingService = service.NewRatingService(s.ratingRepo)
	return s, nil
}

// NewApp builds the Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Yayayum Menu API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler renders errors that escape a handler, such as unknown routes,
// with the same body shape as handled errors.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return models.RespondWithError(c, fe.Code, &models.AppError{Kind: models.KindNotFound, Message: fe.Message})
		case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			return models.RespondWithError(c, fe.Code, models.NewValidationError(fe.Message))
		}
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled request error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewStoreError(err))
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(middleware.TracingMiddleware())
	// Copies the request and trace ids into the user context for logging.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the rate limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = defaultOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Only writes are rate limited.
	writes := middleware.RateLimit(s.redis, s.config.Env, s.config.RateLimitPerMinute, time.Minute, "writes")

	users := app.Group("/users")
	users.Post("/", writes, s.CreateUser)
	users.Get("/", s.ListUsers)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", writes, s.UpdateUser)
	users.Delete("/:id", writes, s.DeleteUser)

	dishes := app.Group("/dishes")
	dishes.Post("/", writes, s.CreateDish)
	dishes.Get("/", s.ListDishes)
	dishes.Get("/:id", s.GetDish)
	dishes.Put("/:id", writes, s.UpdateDish)
	dishes.Delete("/:id", writes, s.DeleteDish)

	ratings := app.Group("/ratings")
	ratings.Post("/", writes, s.CreateRating)
	ratings.Get("/", s.ListRatings)
	// Specific lookup routes before the generic /:id route
	ratings.Get("/dish/:dishId", s.ListRatingsByDish)
	ratings.Get("/user/:userId", s.ListRatingsByUser)
	ratings.Get("/:id", s.GetRating)
	ratings.Put("/:id", writes, s.UpdateRating)
	ratings.Delete("/:id", writes, s.DeleteRating)
}

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.SendString("Hello, World!")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

// ReadinessCheck pings the database, and Redis when one is configured.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
			"dialect":  s.db.Dialector.Name(),
		},
		"time": time.Now().UTC(),
	})
}

// Shutdown stops accepting requests and waits for in-flight handlers. The
// pool and the Redis client belong to the caller and stay open.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app == nil {
		return nil
	}
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "http server stopped")
	return nil
}
