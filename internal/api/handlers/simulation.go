package handlers

import (
	"errors"
	"net/http"

	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
	"github.com/stocknote/stock-dashboard-backend/internal/api/response"
	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
	"github.com/stocknote/stock-dashboard-backend/internal/validation"
)

// SimulationHandler handles HTTP requests for the simulated-trading
// module: status, buy, sell, reset, and the simulated trade history.
type SimulationHandler struct {
	simulationService *service.SimulationService
	quoteService      *service.QuoteService
}

// NewSimulationHandler creates a new SimulationHandler with the provided service dependencies.
func NewSimulationHandler(simulationService *service.SimulationService, quoteService *service.QuoteService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		quoteService:      quoteService,
	}
}

// Status handles GET requests for the simulated portfolio: cash,
// holdings valued at current prices, and realized results.
//
// Endpoint: GET /api/simulation
// Response: 200 OK with SimulationStatus
// Error: 500 Internal Server Error if retrieval fails
func (h *SimulationHandler) Status(w http.ResponseWriter, _ *http.Request) {
	status, err := h.simulationService.Status(h.quoteService.Prices())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSimulation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, status)
}

// Buy handles POST requests to execute a simulated purchase. The trade
// is all-or-nothing: on rejection nothing changes.
//
// Endpoint: POST /api/simulation/buy
// Request Body: TradeRequest
// Response: 201 Created with TradeResult
// Error: 400 Bad Request if validation fails
// Error: 422 Unprocessable Entity if cash cannot cover the purchase
// Error: 500 Internal Server Error if execution fails
func (h *SimulationHandler) Buy(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.simulationService.Buy(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientCash) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrInsufficientCash.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExecuteTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}

// Sell handles POST requests to execute a simulated sale.
//
// Endpoint: POST /api/simulation/sell
// Request Body: TradeRequest
// Response: 201 Created with TradeResult
// Error: 400 Bad Request if validation fails
// Error: 422 Unprocessable Entity if the position lacks share coverage
// Error: 500 Internal Server Error if execution fails
func (h *SimulationHandler) Sell(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.simulationService.Sell(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientShares) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrInsufficientShares.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExecuteTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}

// Reset handles POST requests to clear the simulated portfolio and
// restore cash to the initial capital.
//
// Endpoint: POST /api/simulation/reset
// Response: 204 No Content
// Error: 500 Internal Server Error if the reset fails
func (h *SimulationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.simulationService.Reset(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSimulation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Transactions handles GET requests for the simulated trade history.
//
// Endpoint: GET /api/simulation/transactions
// Response: 200 OK with array of Transaction
// Error: 500 Internal Server Error if retrieval fails
func (h *SimulationHandler) Transactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.simulationService.Transactions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}
