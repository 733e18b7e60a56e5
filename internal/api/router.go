package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/justicebuddy/backend/internal/api/handler"
	"github.com/justicebuddy/backend/internal/api/middleware"
	"github.com/justicebuddy/backend/internal/core/ports"
	"github.com/justicebuddy/backend/internal/core/service"
	"github.com/justicebuddy/backend/internal/infrastructure/config"
	mongodb "github.com/justicebuddy/backend/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, generator ports.Generator, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("justicebuddy"))

	// --- Dependencies ---
	adminRepo := mongodb.NewAdminRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, 24*time.Hour)
	blogService := service.NewBlogService(blogRepo, log)
	chatService := service.NewChatService(generator, log)

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	chatHandler := handler.NewChatHandler(chatService, log)

	authRequired := middleware.Auth(cfg.JWTSecret, authService)

	// --- Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is live!")
	})

	admin := e.Group("/api/admin")
	admin.POST("/register", authHandler.Register)
	admin.POST("/login", authHandler.Login)
	admin.GET("/dashboard", authHandler.Dashboard, authRequired)

	blogs := e.Group("/api/blogs")
	blogs.GET("", blogHandler.List)
	blogs.POST("", blogHandler.Create, authRequired)
	blogs.PUT("/:id", blogHandler.Update, authRequired)
	blogs.DELETE("/:id", blogHandler.Delete, authRequired)

	e.POST("/chat", chatHandler.Ask)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
