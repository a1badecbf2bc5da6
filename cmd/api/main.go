// @title FYP Portal API
// @version 1.0
// @description Final-year-project proposals, reviews and artifact access.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/fyp-portal/docs"
	"github.com/linskybing/fyp-portal/internal/api/middleware"
	"github.com/linskybing/fyp-portal/internal/api/routes"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/config/db"
	"github.com/linskybing/fyp-portal/internal/cron"
	"github.com/linskybing/fyp-portal/internal/notify"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas and seed the catalog
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := db.Seed(db.DB, config.Seed); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.NewMinioStore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, store, notify.New(), config.Seed)

	// Start background tasks
	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays, 24*time.Hour)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.MaxMultipartMemory = (config.MaxUploadMB + 1) << 20
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, services, repos)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start: %v", err)
	}
}
