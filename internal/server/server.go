// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenManager

	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	userService    *service.UserService
	profileService *service.ProfileService
	postService    *service.PostService
	commentService *service.CommentService
	githubService  *service.GithubService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this to supply their own database and Redis handles.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("devconnect-api"),
		tokens:         auth.NewTokenManager(cfg.JWTSecret),
		userRepo:       repository.NewUserRepository(db),
		profileRepo:    repository.NewProfileRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo, server.tokens)
	server.profileService = service.NewProfileService(server.profileRepo)
	server.postService = service.NewPostService(server.postRepo, server.userRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.userRepo)
	server.githubService = service.NewGithubService(cfg.GithubToken)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing (after requestid so the span carries it)
	app.Use(middleware.Tracing())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "DevConnect Metrics Dashboard",
	}))

	// Registration and authentication
	api.Post("/users", s.Register)
	api.Post("/auth", s.Login)
	api.Get("/auth", s.AuthRequired(), s.GetMe)

	// Profile routes; github proxy and the full listing are public
	profile := api.Group("/profile")
	profile.Get("/github/:username", s.GetGithubRepos)
	profile.Get("/me", s.AuthRequired(), s.GetMyProfile)
	profile.Post("/", s.AuthRequired(), s.UpsertProfile)
	profile.Delete("/", s.AuthRequired(), s.DeleteAccount)
	profile.Get("/", s.GetProfiles)

	// Post routes, all protected
	posts := api.Group("/posts", s.AuthRequired())
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	// Specific routes before the generic /:id
	posts.Put("/like/:id", s.LikePost)
	posts.Put("/unlike/:id", s.UnlikePost)
	posts.Post("/comment/:id", s.CreateComment)
	posts.Delete("/comment/:id/:comment_id", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)
}

// Shutdown releases server-held resources. The fiber app is shut down
// separately by the caller before this runs.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Warn("Redis close error", "error", err)
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is a cache here, not a dependency; its absence degrades
	// performance, not readiness.
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. Every failure mode,
// whether the header is missing, malformed, or carries a bad token, yields
// the same response; callers cannot probe which check failed.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return models.RespondWithError(c, models.NewUnauthorizedError())
		}

		userID, err := s.tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, models.NewUnauthorizedError())
		}

		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}
