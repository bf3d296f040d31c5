package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "pizzapos-backend/internal/api/http"
	"pizzapos-backend/internal/config"
	"pizzapos-backend/internal/jobs"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/repository/postgres"
	"pizzapos-backend/internal/scheduler"
	"pizzapos-backend/internal/service"
	"pizzapos-backend/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PizzaPOS backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Business timezone", "name", cfg.Business.TimezoneName, "utc_offset_hours", cfg.Business.UTCOffsetHours)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	loc := cfg.Location()
	slot := session.NewStore(cfg.Session.SlotPath)
	authSvc := service.NewAuthService(
		store.UserRepository,
		slot,
		cfg.Session.JWTSecret,
		time.Duration(cfg.Session.TokenTTLMinutes)*time.Minute,
	)
	txnSvc := service.NewTransactionService(store.EntryRepository, store.ProductRepository, loc)
	adminSvc := service.NewAdminService(
		store.ProductRepository,
		store.StockRepository,
		store.UserRepository,
		store.ConfigRepository,
		store.EntryRepository,
		txnSvc,
	)
	backupSvc := service.NewBackupService(
		store.ProductRepository,
		store.StockRepository,
		store.UserRepository,
		store.ConfigRepository,
		loc,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prime the replica before serving any reads
	if err := txnSvc.Refresh(ctx); err != nil {
		logger.Error("Failed to load initial replica", "error", err)
		log.Fatalf("Failed to load initial replica: %v", err)
	}

	// Subscribe to store changes; every notification triggers a full refresh
	feed, err := postgres.NewChangeFeed(cfg.GetDatabaseConnectionString(), func() {
		if err := txnSvc.Refresh(context.Background()); err != nil {
			logger.Error("Replica refresh after change notification failed", "error", err)
		}
	})
	if err != nil {
		logger.Error("Failed to start change feed", "error", err)
		log.Fatalf("Failed to start change feed: %v", err)
	}
	go feed.Run(ctx)

	// Start scheduled jobs
	jobRunner := jobs.NewJobRunner(backupSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(authSvc, txnSvc, adminSvc, backupSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
