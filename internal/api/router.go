package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Jesus1025/registro-interno/docs" // swagger docs registration
	"github.com/Jesus1025/registro-interno/internal/api/handler"
	"github.com/Jesus1025/registro-interno/internal/api/middleware"
	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/service"
	"github.com/Jesus1025/registro-interno/internal/infrastructure/config"
	mongodb "github.com/Jesus1025/registro-interno/internal/infrastructure/db/mongo"
	redisdb "github.com/Jesus1025/registro-interno/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("registro"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- API routes ---
	// The RBAC sets mirror the panel's permission gate: consulta is
	// read-only, usuario cannot delete, profile management is admin-only.
	api := e.Group("/api", authMiddleware)
	api.POST("/cambiar-password", authHandler.ChangePassword)

	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUsuario, domain.RoleConsulta)
	mutators := middleware.RBAC(domain.RoleAdmin, domain.RoleUsuario)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	clients := api.Group("/clientes")
	clients.GET("", clientHandler.List, anyRole)
	clients.GET("/:rut", clientHandler.Get, anyRole)
	clients.POST("", clientHandler.Save, mutators)
	clients.PUT("/:rut", clientHandler.Update, mutators)
	clients.DELETE("", clientHandler.Delete, adminOnly)

	users := api.Group("/usuarios", adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:username", userHandler.Get)
	users.POST("", userHandler.Save)
	users.DELETE("", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
