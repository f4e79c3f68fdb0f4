package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-content-pipeline/internal/compiler"
	"blog-content-pipeline/internal/config"
	"blog-content-pipeline/internal/generation"
	"blog-content-pipeline/internal/handler"
	"blog-content-pipeline/internal/infrastructure/database"
	"blog-content-pipeline/internal/logger"
	"blog-content-pipeline/internal/metrics"
	"blog-content-pipeline/internal/middleware"
	"blog-content-pipeline/internal/repository"
	"blog-content-pipeline/internal/service"
	"blog-content-pipeline/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repository
	draftRepo := repository.NewPostgresDraftRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize generation engine
	templates, err := generation.LoadPromptTemplates(cfg.PromptsFile)
	if err != nil {
		logger.Fatal("Failed to load prompt templates",
			slog.String("error", err.Error()))
	}

	llm, err := generation.NewOpenAIClient(generation.LLMSettings{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.GenerationTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to create LLM client",
			slog.String("error", err.Error()))
	}
	engine := generation.NewLLMEngine(llm, templates)

	// Initialize compiler
	htmlCompiler := compiler.NewHTMLCompiler()

	// Initialize services
	progressService := service.NewProgressService(draftRepo, engine, htmlCompiler, v)
	oneShotService := service.NewOneShotService(engine, htmlCompiler, v)

	// Initialize handlers
	generationHandler := handler.NewGenerationHandler(progressService, oneShotService)
	draftHandler := handler.NewDraftHandler(progressService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		gen := v1.Group("/generation")
		{
			gen.POST("/step", generationHandler.HandleStep)
			gen.POST("/one-shot", generationHandler.HandleOneShot)
		}

		drafts := v1.Group("/drafts")
		{
			drafts.GET("", draftHandler.ListDrafts)
			drafts.GET("/:id", draftHandler.GetDraft)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
