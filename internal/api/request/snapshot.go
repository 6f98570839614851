package request

import "github.com/stocknote/stock-dashboard-backend/internal/model"

// SaveSnapshotRequest records the recommendation list for one data
// date. Saving the same dateKey twice is a no-op.
type SaveSnapshotRequest struct {
	DateKey string                 `json:"dateKey"`
	Records []model.Recommendation `json:"records"`
}
