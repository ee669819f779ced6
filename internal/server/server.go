// Package server exposes the post and user services over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	_ "postboard/docs" // swagger docs
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/events"
	"postboard/internal/featureflags"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	publisher      events.Publisher
	featureFlags   *featureflags.Manager
	postService    *service.PostService
	userService    *service.UserService
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// redisClient may be nil, in which case caching and the per-route rate limits
// are skipped. A nil publisher disables lifecycle events.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher events.Publisher) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, errors.New("server: config and database are required")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tx := repository.NewTransactor(db)
	flags := featureflags.NewManager(cfg.FeatureFlags)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("postboard-api"),
		publisher:      publisher,
		featureFlags:   flags,
	}
	server.postService = service.NewPostService(postRepo, userRepo, tx,
		service.WithFlags(flags),
		service.WithEvents(publisher, cfg.EventsBackend),
	)
	server.userService = service.NewUserService(userRepo, postRepo, tx, flags)

	return server, nil
}

// NewApp builds a Fiber app with the server's middleware and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Postboard API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Must follow requestid and tracing so both ids reach the user context.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/flags", s.GetFeatureFlags)

	createLimit := s.config.RateLimitCreatePerMinute

	posts := app.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/create", middleware.RateLimit(s.redis, createLimit, time.Minute, "create_post"), s.CreatePost)
	// Specific /user/:userId before the generic /:id routes.
	posts.Get("/user/:userId", s.GetUserPosts)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Patch("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	users := app.Group("/users")
	users.Post("/create", middleware.RateLimit(s.redis, createLimit, time.Minute, "create_user"), s.CreateUser)
	users.Get("/:id", s.GetUser)
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
	if err := database.Ping(ctx, s.db); err != nil {
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
	overall := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now().UTC(),
	})
}

// Start builds the app and listens on the configured port.
func (s *Server) Start() error {
	s.app = s.NewApp()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown stops accepting requests, then releases the publisher, Redis and
// the database in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := database.Close(s.db); err != nil {
		errs = append(errs, err)
	}

	middleware.Logger.Info("Server shutdown complete")
	return errors.Join(errs...)
}
