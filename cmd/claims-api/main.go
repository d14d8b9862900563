// @title CascadeConnect Claims API
// @version 1.0
// @description Warranty claim management with homeowner address resolution

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kevin101681/cascadeconnect-sub011/internal/api"
	"github.com/kevin101681/cascadeconnect-sub011/internal/api/handlers"
	"github.com/kevin101681/cascadeconnect-sub011/internal/auth"
	"github.com/kevin101681/cascadeconnect-sub011/internal/config"
	"github.com/kevin101681/cascadeconnect-sub011/internal/db"
	"github.com/kevin101681/cascadeconnect-sub011/internal/health"
	"github.com/kevin101681/cascadeconnect-sub011/internal/logger"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"
	"github.com/kevin101681/cascadeconnect-sub011/internal/scheduler"
	"github.com/kevin101681/cascadeconnect-sub011/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration first (before logger)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger with configuration
	logger.Init(cfg.Logger)

	logger.Info().
		Str("environment", cfg.Logger.Environment).
		Str("log_level", cfg.Logger.Level).
		Msg("configuration loaded successfully")

	// Run migrations before connecting to database
	logger.Info().Msg("running database migrations")
	if err := db.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize database
	ctx := context.Background()
	database, err := db.NewDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	logger.Info().Msg("database connected successfully")

	// Initialize repositories
	homeownerRepo := repository.NewHomeownerRepository(database.Pool)
	claimRepo := repository.NewClaimRepository(database.Pool)
	messageRepo := repository.NewMessageRepository(database.Pool)

	// Initialize services
	notifier := service.NewLogNotifier()
	matchService := service.NewHomeownerMatchService(homeownerRepo, cfg.Matching)
	homeownerService := service.NewHomeownerService(homeownerRepo, matchService.InvalidateCandidates)
	claimService := service.NewClaimService(claimRepo, matchService, notifier, cfg.Matching.AutoLinkThreshold)

	// Initialize and start scheduler
	cronScheduler := scheduler.NewScheduler(claimRepo, notifier)
	if err := cronScheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer cronScheduler.Stop()

	// Initialize handlers
	homeownerHandler := handlers.NewHomeownerHandler(homeownerService)
	claimHandler := handlers.NewClaimHandler(claimService, messageRepo)
	matchHandler := handlers.NewMatchHandler(matchService)
	systemHandler := handlers.NewSystemHandler(homeownerRepo, claimRepo, cronScheduler.RunReviewDigestNow)

	// Set up Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(api.RequestIDMiddleware())
	router.Use(api.LoggingMiddleware())
	router.Use(api.CORSMiddleware(cfg.CORS))
	router.Use(api.ErrorHandlerMiddleware())

	// Health check endpoint
	healthChecker := health.NewHealthChecker(database, cfg.Database.HealthTimeout)
	router.GET("/health", healthChecker.Handler)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(auth.APIKeyMiddleware(cfg))
	{
		// Homeowner routes
		homeowners := v1.Group("/homeowners")
		{
			homeowners.POST("", homeownerHandler.CreateHomeowner)
			homeowners.GET("", homeownerHandler.ListHomeowners)
			homeowners.GET("/:id", homeownerHandler.GetHomeowner)
			homeowners.PUT("/:id", homeownerHandler.UpdateHomeowner)
			homeowners.DELETE("/:id", homeownerHandler.DeleteHomeowner)
		}

		// Claim routes
		claims := v1.Group("/claims")
		{
			claims.POST("", claimHandler.IntakeClaim)
			claims.GET("", claimHandler.ListClaims)
			claims.GET("/:id", claimHandler.GetClaim)
			claims.PATCH("/:id/status", claimHandler.UpdateClaimStatus)
			claims.POST("/:id/link", claimHandler.LinkClaim)
			claims.DELETE("/:id", claimHandler.DeleteClaim)
			claims.GET("/:id/messages", claimHandler.ListClaimMessages)
			claims.POST("/:id/messages", claimHandler.CreateClaimMessage)
		}

		// Address resolution routes
		match := v1.Group("/match")
		{
			match.POST("/homeowner", matchHandler.MatchHomeowner)
			match.POST("/candidates", matchHandler.MatchCandidates)
		}

		// System routes
		system := v1.Group("/system")
		{
			system.GET("/stats", systemHandler.GetStats)
			system.POST("/review-digest", systemHandler.TriggerReviewDigest)
		}
	}

	// Start server with configured bind address
	addr := cfg.GetBindAddress()
	// Use a listener so we can discover the selected port when PORT=0
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("failed to bind listener")
	}

	srv := &http.Server{
		Addr:    ln.Addr().String(),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	// Give outstanding requests a configured timeout to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
