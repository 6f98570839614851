package model

import "time"

// Recommendation is one entry of the daily AI-recommendation list as
// it existed on the snapshot date. The engine treats the fields as
// opaque display data.
type Recommendation struct {
	StockID   string  `json:"stockId"`
	StockName string  `json:"stockName"`
	Action    string  `json:"action"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason,omitempty"`
}

// Snapshot is a frozen, date-keyed copy of recommendation data kept
// for historical comparison. Snapshots are write-once per date key and
// only ever removed by retention eviction.
type Snapshot struct {
	DateKey string           `json:"dateKey"`
	SavedAt time.Time        `json:"savedAt"`
	Records []Recommendation `json:"records"`
}
