package handlers

import (
	"net/http"
	"strings"

	"github.com/stocknote/stock-dashboard-backend/internal/api/response"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
)

// QuoteHandler exposes the cached current-price map.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependency.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Quotes handles GET requests for cached quotes.
//
// Endpoint: GET /api/quotes?symbols=2330,2317
// Response: 200 OK with array of Quote; symbols without a cached
// quote are omitted rather than erroring.
// Error: 400 Bad Request if symbols is missing
func (h *QuoteHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("symbols")
	if strings.TrimSpace(raw) == "" {
		response.RespondError(w, http.StatusBadRequest, "symbols parameter is required", "")
		return
	}

	symbols := []string{}
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			symbols = append(symbols, trimmed)
		}
	}

	response.RespondJSON(w, http.StatusOK, h.quoteService.Quotes(symbols))
}
