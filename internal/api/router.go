package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/beyond-platform/content-api/internal/api/handler"
	"github.com/beyond-platform/content-api/internal/api/middleware"
	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/service"
	"github.com/beyond-platform/content-api/internal/infrastructure/db/mysql"
	redisdb "github.com/beyond-platform/content-api/internal/infrastructure/db/redis"
)

// NewRouter assembles repositories, services, and handlers, and mounts every
// route. Routes under /v1 require a valid session; the users, roles, and
// content mutation routes additionally require the admin role.
func NewRouter(db *gorm.DB, rdb *redis.Client, secret []byte, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("beyond"))

	// --- wiring ---
	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	contentRepo := mysql.NewContentRepository(db)
	denylist := redisdb.NewSessionDenylist(rdb)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(secret, tokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, denylist, log)
	userService := service.NewUserService(userRepo, roleRepo, hasher, log)
	contentService := service.NewContentService(contentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- public routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.POST("/auth/login", authHandler.Login)

	// --- authenticated routes ---
	authMW := middleware.Auth(tokens, denylist, log)
	adminOnly := middleware.RBAC(log, domain.RoleAdmin)

	v1 := e.Group("/v1", authMW)
	v1.POST("/auth/logout", authHandler.Logout)

	users := v1.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	roles := v1.Group("/roles", adminOnly)
	roles.GET("", roleHandler.List)
	roles.POST("", roleHandler.Create)
	roles.PUT("/:id", roleHandler.Update)
	roles.DELETE("/:id", roleHandler.Delete)

	content := v1.Group("/content/:kind")
	content.GET("", contentHandler.List)
	content.POST("", contentHandler.Create, adminOnly)
	content.PUT("/:id", contentHandler.Update, adminOnly)
	content.DELETE("/:id", contentHandler.Delete, adminOnly)
	content.POST("/:id/like", contentHandler.Like)
	content.DELETE("/:id/like", contentHandler.Unlike)

	return e
}
