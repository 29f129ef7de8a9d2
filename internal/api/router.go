package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/medicore/clinic-system/docs"
	"github.com/medicore/clinic-system/internal/api/handler"
	"github.com/medicore/clinic-system/internal/api/middleware"
	"github.com/medicore/clinic-system/internal/core/service"
	"github.com/medicore/clinic-system/internal/infrastructure/config"
	mongostore "github.com/medicore/clinic-system/internal/infrastructure/db/mongo"
	redisstore "github.com/medicore/clinic-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewJWTTokenService(cfg.Auth.JWTSecret)
	gate := service.NewGate(tokens)
	authService := service.NewAuthService(userRepo, hasher, tokens, cfg.Auth.TokenTTL, cfg.Auth.MinPasswordLen, log)
	cache := redisstore.NewProfileCache(rdb, cfg.Redis.CacheTTL, log)
	accountService := service.NewAccountService(userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes, one guard preset each ---
	e.GET("/me", accountHandler.Me, middleware.LoginRequired(gate))
	e.GET("/admin/users", accountHandler.ListUsers, middleware.AdminOnly(gate))
	e.GET("/doctor/overview", accountHandler.Overview, middleware.DoctorOnly(gate))
	e.GET("/patient/profile", accountHandler.PatientProfile, middleware.PatientOnly(gate))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
