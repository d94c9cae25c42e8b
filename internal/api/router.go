package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kudoshq/recognition-api/docs"
	"github.com/kudoshq/recognition-api/internal/api/handler"
	"github.com/kudoshq/recognition-api/internal/api/middleware"
	"github.com/kudoshq/recognition-api/internal/core/access"
	"github.com/kudoshq/recognition-api/internal/core/ports"
	"github.com/kudoshq/recognition-api/internal/core/service"
	mongodb "github.com/kudoshq/recognition-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kudoshq/recognition-api/internal/infrastructure/db/redis"
)

// RouterConfig carries everything NewRouter needs beyond the two
// database handles.
type RouterConfig struct {
	JWTSecret     string
	Bus           ports.EventBus
	External      ports.ExternalNotifier
	NotifyTimeout time.Duration
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recognition"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	recognitionRepo := mongodb.NewRecognitionRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	dedup := redisdb.NewDeliveryDeduper(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	recognitionService := service.NewRecognitionService(
		userRepo, recognitionRepo, notificationRepo,
		cfg.Bus, cfg.External, dedup, cfg.NotifyTimeout, cfg.Logger,
	)
	analyticsService := service.NewAnalyticsService(
		userRepo, teamRepo, recognitionRepo,
		cfg.External, cfg.NotifyTimeout, cfg.Logger,
	)
	notificationService := service.NewNotificationService(notificationRepo, cfg.Logger)
	userService := service.NewUserService(userRepo, teamRepo, cfg.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	recognitionHandler := handler.NewRecognitionHandler(recognitionService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	userHandler := handler.NewUserHandler(userService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	v1.POST("/recognitions", recognitionHandler.Send)
	v1.GET("/recognitions", recognitionHandler.ListAll, middleware.Require(access.IsHROrAdmin))
	v1.GET("/recognitions/mine", recognitionHandler.ListMine)
	v1.DELETE("/recognitions/:id", recognitionHandler.Delete)

	v1.GET("/teams", userHandler.ListTeams)
	v1.GET("/teams/:id", userHandler.GetTeam)
	v1.GET("/teams/:id/recognitions", recognitionHandler.ListByTeam)

	v1.GET("/users/:id", userHandler.Get)
	v1.GET("/users/:id/recognitions", recognitionHandler.ListByUser)

	v1.GET("/me", userHandler.Profile)
	v1.PATCH("/me", userHandler.UpdateProfile)

	an := v1.Group("/analytics", middleware.Require(access.CanViewAnalytics))
	an.GET("", analyticsHandler.Comprehensive)
	an.GET("/teams/:id", analyticsHandler.Team)
	an.POST("/teams/:id/share", analyticsHandler.ShareTeam)
	an.GET("/keywords/:keyword", analyticsHandler.Keyword)

	v1.GET("/notifications", notificationHandler.ListMine)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	return e
}
