// Package entrypoint wires the application together and runs the HTTP
// server with graceful shutdown.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/config"
	"github.com/Jocko2121/flashcard-app/internal/database"
	dbaudit "github.com/Jocko2121/flashcard-app/internal/database/audit"
	http_controllers "github.com/Jocko2121/flashcard-app/internal/http"
	"github.com/Jocko2121/flashcard-app/internal/importer"
	"github.com/Jocko2121/flashcard-app/internal/scheduler"
	"github.com/Jocko2121/flashcard-app/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until an interrupt or termination signal
// arrives, then drains it within the configured shutdown timeout.
func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background workers before the listener so in-flight requests
	// can still enqueue
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run assembles all application components from configuration and
// serves until shutdown.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting flashcard server v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	auditor := audit.NewService(dbaudit.NewRepository(db.DB))
	processor := importer.NewProcessor(db, auditor)

	// Task queue for background maintenance
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewRefreshStatsQueue(db),
			tasks.NewCleanupAuditEventsQueue(auditor),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic maintenance enqueued on a cron schedule
	var maintenance *scheduler.MaintenanceScheduler
	if cfg.Maintenance.Enabled && taskClient != nil {
		maintenance = scheduler.NewMaintenanceScheduler(taskClient, cfg.Maintenance.Schedule, cfg.Audit.RetentionDays)
		if err := maintenance.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start maintenance scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:   db,
		Importer:   processor,
		Auditor:    auditor,
		TaskClient: taskClient,
		Version:    version,
	})

	// The SPA frontend is served from a different origin during
	// development, so the API allows cross-origin requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORS.Origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	onShutdown := func(ctx context.Context) {
		if maintenance != nil {
			maintenance.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(corsHandler, cfg, onShutdown)
}
