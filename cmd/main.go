package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cookiee01/data-engineering-learning-agent/docs"
	"github.com/cookiee01/data-engineering-learning-agent/internal/config"
	"github.com/cookiee01/data-engineering-learning-agent/internal/curriculum"
	"github.com/cookiee01/data-engineering-learning-agent/internal/handlers"
	"github.com/cookiee01/data-engineering-learning-agent/internal/llm"
	"github.com/cookiee01/data-engineering-learning-agent/internal/logger"
	"github.com/cookiee01/data-engineering-learning-agent/internal/middleware"
	"github.com/cookiee01/data-engineering-learning-agent/internal/migrations"
	"github.com/cookiee01/data-engineering-learning-agent/internal/prompts"
	"github.com/cookiee01/data-engineering-learning-agent/internal/repositories"
	"github.com/cookiee01/data-engineering-learning-agent/internal/services"
	"github.com/cookiee01/data-engineering-learning-agent/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 1 << 20 // 1MB, code snippets included

// @title Data Engineering Learning Agent API
// @version 1.0
// @description Progress tracking, curriculum and AI assisted study tools for a six-week data engineering program

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Data Engineering Learning Agent",
		zap.String("progress_backend", cfg.Progress.Backend),
		zap.String("llm_provider", cfg.LLM.Provider),
	)

	catalog := curriculum.Default()

	// Initialize progress storage
	var progressRepo services.ProgressRepository
	switch cfg.Progress.Backend {
	case config.BackendMySQL:
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migrations.Run(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		progressRepo = repositories.NewProgressMySQLRepository(db, logger.Logger)
	default:
		progressRepo = repositories.NewProgressFileRepository(cfg.Progress.FilePath, logger.Logger)
	}

	// Initialize the model collaborator. Without one the assistant pages show a notice.
	provider, err := llm.NewProvider(context.Background(), cfg.LLM, logger.Logger)
	if err != nil {
		logger.Logger.Warn("AI assistant disabled", zap.Error(err))
	} else if local, ok := llm.CatalogOf(provider); ok {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Ollama.ListTimeout)
		sel, err := local.Refresh(ctx)
		cancel()
		if err != nil {
			logger.Logger.Warn("Local model service not reachable", zap.String("url", cfg.LLM.Ollama.BaseURL), zap.Error(err))
		} else {
			logger.Logger.Info("Local models resolved",
				zap.Strings("available", sel.Available),
				zap.String("general", sel.General),
				zap.String("code", sel.Code),
			)
		}
	}

	composer, err := prompts.NewComposer()
	if err != nil {
		logger.Logger.Fatal("Failed to load prompt templates", zap.Error(err))
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Logger.Fatal("Failed to load page templates", zap.Error(err))
	}

	// Initialize services
	progressService := services.NewProgressService(progressRepo, logger.Logger)
	dashboardService := services.NewDashboardService(progressService, catalog, logger.Logger)
	assistantService := services.NewAssistantService(provider, cfg.LLM.Provider, catalog, composer, logger.Logger)

	// Initialize handlers
	progressHandler := handlers.NewProgressHandler(progressService, dashboardService, logger.Logger)
	curriculumHandler := handlers.NewCurriculumHandler(catalog, logger.Logger)
	assistantHandler := handlers.NewAssistantHandler(assistantService, logger.Logger)
	pagesHandler := handlers.NewPagesHandler(progressService, dashboardService, assistantService, catalog, renderer, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))
	r.Handle("/static/*", web.StaticHandler())

	// Register routes
	progressHandler.RegisterRoutes(r)
	curriculumHandler.RegisterRoutes(r)
	assistantHandler.RegisterRoutes(r)
	pagesHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second, // model calls may take up to the LLM timeout
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
