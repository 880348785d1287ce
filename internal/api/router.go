package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/usermanagement/user-service/internal/api/handler"
	"github.com/usermanagement/user-service/internal/api/middleware"
	"github.com/usermanagement/user-service/internal/core/service"
	"github.com/usermanagement/user-service/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, log zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	userHandler := handler.NewUserHandler(userService, tokenService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes (public) ---
	e.POST("/api/auth/signup", userHandler.Signup)
	e.POST("/api/auth/login", userHandler.Login)

	// --- Account routes (bearer token required) ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
