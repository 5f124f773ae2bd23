package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/config"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/database"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/repository"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/secrets"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/strategy"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Build the strategy catalog: presets plus an optional override file
	catalog := strategy.DefaultCatalog()
	if cfg.Planner.StrategyFile != "" {
		if err := catalog.LoadFile(cfg.Planner.StrategyFile); err != nil {
			log.Fatalf("Failed to load strategy file %s: %v", cfg.Planner.StrategyFile, err)
		}
		log.Printf("Loaded strategies from %s", cfg.Planner.StrategyFile)
	}

	// Profile encryption key; an ephemeral key means saved profiles do not
	// survive a restart
	profileKey := cfg.Planner.ProfileKey
	if profileKey == "" {
		profileKey, err = secrets.GenerateKey()
		if err != nil {
			log.Fatalf("Failed to generate profile key: %v", err)
		}
		log.Println("PLANNER_PROFILE_KEY not set; using an ephemeral key, saved profiles will not survive a restart")
	}
	cipher, err := secrets.NewCipher(profileKey)
	if err != nil {
		log.Fatalf("Failed to initialize profile cipher: %v", err)
	}

	// Create repositories
	planRepo := repository.NewPlanRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	driftRepo := repository.NewDriftRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	allocationService := service.NewAllocationService(
		catalog,
		cfg.Planner.InternationalShare,
		cfg.Planner.DriftThreshold,
	)
	rebalanceService := service.NewRebalanceService(cfg.Planner.DriftThreshold)
	planService := service.NewPlanService(planRepo, cipher)
	driftScanService := service.NewDriftScanService(
		planRepo,
		snapshotRepo,
		driftRepo,
		rebalanceService,
	)

	// Schedule the background drift scan
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Planner.DriftScanSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := driftScanService.ScanAll(ctx); err != nil {
			log.Printf("Drift scan failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule drift scan: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(
		systemService,
		catalog,
		allocationService,
		planService,
		rebalanceService,
		driftScanService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
