package handlers

import (
	"net/http"

	"github.com/stocknote/stock-dashboard-backend/internal/api/response"
	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for the portfolio dashboard
// views: valued holdings, summary totals, industry distribution,
// realized history, and the export shape. All views are projections
// over the ledger plus the current-price map from the quote service.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	quoteService     *service.QuoteService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, quoteService *service.QuoteService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		quoteService:     quoteService,
	}
}

// Holdings handles GET requests for the active holdings listing.
//
// Endpoint: GET /api/portfolio/holdings
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.portfolioService.Holdings(h.quoteService.Prices())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// Summary handles GET requests for the portfolio-level totals.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.portfolioService.Summary(h.quoteService.Prices())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Distribution handles GET requests for the industry distribution of
// market value across active holdings.
//
// Endpoint: GET /api/portfolio/distribution
// Response: 200 OK with array of IndustryWeight
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Distribution(w http.ResponseWriter, _ *http.Request) {
	weights, err := h.portfolioService.Distribution(h.quoteService.Prices())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, weights)
}

// Realized handles GET requests for the completed-sell history.
//
// Endpoint: GET /api/portfolio/realized
// Response: 200 OK with array of RealizedRecord
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Realized(w http.ResponseWriter, _ *http.Request) {
	records, err := h.portfolioService.Realized()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// Export handles GET requests for the flat tabular holdings shape
// consumed by CSV/report exporters.
//
// Endpoint: GET /api/portfolio/export
// Response: 200 OK with array of ExportRow
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Export(w http.ResponseWriter, _ *http.Request) {
	rows, err := h.portfolioService.ExportRows(h.quoteService.Prices())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}
