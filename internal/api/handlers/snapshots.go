package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
	"github.com/stocknote/stock-dashboard-backend/internal/api/response"
	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
	"github.com/stocknote/stock-dashboard-backend/internal/validation"
)

// SnapshotHandler handles HTTP requests for the recommendation
// snapshot store.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// SaveResponse reports whether a save request actually wrote a new
// snapshot or hit an already-recorded date.
type SaveResponse struct {
	DateKey string `json:"dateKey"`
	Saved   bool   `json:"saved"`
}

// Save handles POST requests to record the recommendation list for a
// data date. A second save for an already-recorded date is a no-op;
// the first payload wins.
//
// Endpoint: POST /api/snapshot
// Request Body: SaveSnapshotRequest
// Response: 201 Created with SaveResponse (saved=true)
// Response: 200 OK with SaveResponse (saved=false, date already recorded)
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if the save fails
func (h *SnapshotHandler) Save(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveSnapshot(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	saved, err := h.snapshotService.Save(r.Context(), req.DateKey, req.Records)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveSnapshot.Error(), err.Error())
		return
	}

	status := http.StatusOK
	if saved {
		status = http.StatusCreated
	}
	response.RespondJSON(w, status, SaveResponse{DateKey: req.DateKey, Saved: saved})
}

// ListDates handles GET requests for the recorded snapshot dates,
// newest first.
//
// Endpoint: GET /api/snapshot
// Response: 200 OK with array of date strings
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) ListDates(w http.ResponseWriter, _ *http.Request) {
	dates, err := h.snapshotService.ListDates()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dates)
}

// Get handles GET requests for the snapshot of one data date.
//
// Endpoint: GET /api/snapshot/{date}
// Response: 200 OK with Snapshot
// Error: 400 Bad Request if the date is malformed
// Error: 404 Not Found if no snapshot exists for the date
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")

	if err := validation.ValidateDateKey(dateKey); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.Get(dateKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}
