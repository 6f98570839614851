package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/api"
	"github.com/stocknote/stock-dashboard-backend/internal/config"
	"github.com/stocknote/stock-dashboard-backend/internal/database"
	"github.com/stocknote/stock-dashboard-backend/internal/quotes"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
	"github.com/stocknote/stock-dashboard-backend/internal/scheduler"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// One calculator shared by the real ledger and the simulation path
	// so the fee/tax rates cannot diverge.
	calculator := accounting.NewCalculator(cfg.Trading.FeeRate, cfg.Trading.SellTaxRate)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(transactionRepo, calculator)
	portfolioService := service.NewPortfolioService(transactionRepo)
	simulationService := service.NewSimulationService(
		simulationRepo,
		transactionRepo,
		calculator,
		cfg.Trading.SimInitialCapital,
	)
	snapshotService := service.NewSnapshotService(
		snapshotRepo,
		cfg.Snapshots.RetentionDays,
		cfg.Snapshots.MaxRecords,
	)

	var quoteClient *quotes.Client
	if cfg.Quotes.BaseURL != "" {
		quoteClient = quotes.NewClient(cfg.Quotes.BaseURL)
	}
	quoteService := service.NewQuoteService(quoteClient, transactionRepo)

	// Seed the simulation cash ledger on first run
	if err := simulationService.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize simulation state: %v", err)
	}

	// Start the background quote refresh
	quoteScheduler := scheduler.New(quoteService)
	if cfg.Quotes.BaseURL != "" {
		if err := quoteScheduler.Start(cfg.Quotes.RefreshCron); err != nil {
			log.Fatalf("Failed to start quote scheduler: %v", err)
		}
		defer quoteScheduler.Stop()
	}

	// Create router
	router := api.NewRouter(
		systemService,
		transactionService,
		portfolioService,
		simulationService,
		snapshotService,
		quoteService,
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
