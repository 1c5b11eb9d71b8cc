// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/soremkrs/Twex/internal/cache"
	"github.com/soremkrs/Twex/internal/config"
	"github.com/soremkrs/Twex/internal/database"
	"github.com/soremkrs/Twex/internal/middleware"
	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"
	"github.com/soremkrs/Twex/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	internalauth "github.com/soremkrs/Twex/internal/auth"
)

const authCookieName = "twex_token"

// Server holds all dependencies and provides handlers
type Server struct {
	config              *config.Config
	db                  *gorm.DB
	redis               *redis.Client
	app                 *fiber.App
	promMiddleware      *fiberprometheus.FiberPrometheus
	google              *internalauth.GoogleProvider
	userRepo            repository.UserRepository
	postRepo            repository.PostRepository
	replyRepo           repository.ReplyRepository
	followRepo          repository.FollowRepository
	notificationRepo    repository.NotificationRepository
	authService         service.AuthService
	postService         service.PostService
	replyService        service.ReplyService
	userService         service.UserService
	notificationService service.NotificationService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("twex-api")

	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   prom,
		userRepo:         userRepo,
		postRepo:         postRepo,
		replyRepo:        replyRepo,
		followRepo:       followRepo,
		notificationRepo: notificationRepo,
	}
	server.authService = service.NewAuthService(userRepo)
	server.postService = service.NewPostService(postRepo)
	server.replyService = service.NewReplyService(replyRepo, postRepo)
	server.userService = service.NewUserService(userRepo, postRepo, followRepo)
	server.notificationService = service.NewNotificationService(notificationRepo)

	if cfg.GoogleOAuthConfigured() {
		server.google = internalauth.NewGoogleProvider(
			cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
	}

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// OpenTelemetry tracing (after requestid so spans carry the request id)
	app.Use(middleware.Tracing())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = s.config.FrontendURL
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they belong to CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/signin", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "signin"), s.Signin)
	auth.Post("/logout", s.Logout)
	auth.Get("/check", s.Check)
	auth.Get("/google", s.GoogleRedirect)
	auth.Get("/google/callback", s.GoogleCallback)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// Feed and post routes
	protected.Get("/posts/:id/replies", s.GetReplies)
	protected.Get("/posts", s.GetFeed)
	protected.Get("/post/:id", s.GetPost)
	protected.Post("/create/post", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	protected.Put("/edit/post/:id", s.UpdatePost)
	protected.Delete("/delete/post/:id", s.DeletePost)

	// Reply routes
	protected.Post("/replies", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_reply"), s.CreateReply)
	protected.Delete("/reply/:id", s.DeleteReply)

	// Like routes
	protected.Post("/like/:id", s.LikePost)
	protected.Delete("/unlike/:id", s.UnlikePost)
	protected.Get("/liked/:id", s.GetLikedStatus)

	// Bookmark routes
	protected.Post("/bookmark/:id", s.BookmarkPost)
	protected.Delete("/unbookmark/:id", s.UnbookmarkPost)
	protected.Get("/bookmarks", s.GetBookmarks)

	// Follow routes
	protected.Post("/follow/:id", s.FollowUser)
	protected.Delete("/unfollow/:id", s.UnfollowUser)
	protected.Get("/following/:id", s.GetFollowingStatus)

	// User routes. Specific /users routes come before the author-scoped
	// /:id ones, and the /:username/profile catch-all is registered last.
	protected.Get("/users/suggestions", s.GetSuggestions)
	protected.Get("/users/:id/posts", s.GetUserPosts)
	protected.Get("/users/:id/replies", s.GetUserReplies)
	protected.Get("/users/:id/likes", s.GetUserLikes)
	protected.Get("/users/:id/following", s.GetUserFollowing)
	protected.Get("/users/:id/followers", s.GetUserFollowers)
	protected.Put("/edit/profile/:id", s.UpdateProfile)
	protected.Get("/search/users", middleware.RateLimit(
		s.redis, 30, time.Minute, "search"), s.SearchUsers)

	// Notification routes
	protected.Get("/notifications/check", s.CheckNotifications)
	protected.Post("/notifications/mark-seen", s.MarkNotificationsSeen)

	// Generic /:username/profile must be last
	protected.Get("/:username/profile", s.GetProfile)
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

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
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

// AuthRequired returns the authentication middleware. It accepts a Bearer
// token or falls back to the session cookie browsers carry.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := s.tokenFromRequest(c)
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		userID, err := s.validateToken(c, tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError(err.Error()))
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// tokenFromRequest extracts the JWT from the Authorization header or the
// session cookie, preferring the header.
func (s *Server) tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Cookies(authCookieName)
}

// validateToken parses and validates a JWT, returning the user ID it names.
func (s *Server) validateToken(c *fiber.Ctx, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "twex-api" {
		return 0, fmt.Errorf("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "twex-client" {
		return 0, fmt.Errorf("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("Invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("Invalid user ID in token")
	}

	// Check JTI for revocation
	if jti, exists := claims["jti"].(string); exists && jti != "" {
		if s.redis != nil {
			isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
			if err == nil && isBlacklisted > 0 {
				return 0, fmt.Errorf("Token has been revoked")
			}
		}
	}

	return uint(userID), nil
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Twex API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
