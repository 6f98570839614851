package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stocknote/stock-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/stocknote/stock-dashboard-backend/internal/api/middleware"
	"github.com/stocknote/stock-dashboard-backend/internal/config"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	transactionService *service.TransactionService,
	portfolioService *service.PortfolioService,
	simulationService *service.SimulationService,
	snapshotService *service.SnapshotService,
	quoteService *service.QuoteService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.ListTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, quoteService)
			r.Get("/holdings", portfolioHandler.Holdings)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/distribution", portfolioHandler.Distribution)
			r.Get("/realized", portfolioHandler.Realized)
			r.Get("/export", portfolioHandler.Export)
		})

		r.Route("/simulation", func(r chi.Router) {
			simulationHandler := handlers.NewSimulationHandler(simulationService, quoteService)
			r.Get("/", simulationHandler.Status)
			r.Post("/buy", simulationHandler.Buy)
			r.Post("/sell", simulationHandler.Sell)
			r.Post("/reset", simulationHandler.Reset)
			r.Get("/transactions", simulationHandler.Transactions)
		})

		r.Route("/snapshot", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
			r.Get("/", snapshotHandler.ListDates)
			r.Post("/", snapshotHandler.Save)
			r.Get("/{date}", snapshotHandler.Get)
		})

		quoteHandler := handlers.NewQuoteHandler(quoteService)
		r.Get("/quotes", quoteHandler.Quotes)
	})

	return r
}
