package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"detouradmin/internal/config"
	"detouradmin/internal/db"
	"detouradmin/internal/email"
	"detouradmin/internal/jobs"
	"detouradmin/internal/metrics"
	"detouradmin/internal/server"
	"detouradmin/internal/stats"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Read model and metrics
	statsSvc := stats.New(database)
	metrics.Init(statsSvc)

	// Background stats refresher keeps the snapshot warm
	refresher := jobs.NewStatsRefresher(statsSvc, cfg.StatsRefreshInterval)
	go refresher.Start(ctx)

	// Invitation email
	notifier := email.NewNotifier(cfg)

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, statsSvc, notifier); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
