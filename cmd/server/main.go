package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/handlers"
	"github.com/rafmac11/landscapes-form/internal/middleware"
	"github.com/rafmac11/landscapes-form/pkg/server"
)

// @title Landscapes Unlimited Lead Form API
// @version 1.0
// @description Accepts client lead form submissions and forwards them to the notification email list and Airtable.

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestSizeLimit(64 * 1024))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	// The public form page and its assets
	router.Static("/public", cfg.PublicDir)
	router.StaticFile("/", cfg.PublicDir+"/index.html")

	leadHandler := handlers.NewLeadHandler(container.Dispatcher)
	adminHandler := handlers.NewAdminHandler(container.Dispatcher)

	api := router.Group("/api")
	{
		api.POST("/send-form",
			middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
			leadHandler.SendForm,
		)

		admin := api.Group("/admin", container.Auth.RequireAuth())
		{
			admin.POST("/test-dispatch", adminHandler.TestDispatch)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.Infof("Server started on port %s", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
