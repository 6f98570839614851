package model

// SimulationState is the persisted cash ledger for the simulated
// portfolio. Cash starts at InitialCapital and is debited/credited by
// simulated trades; it must never go negative.
type SimulationState struct {
	Cash           int64 `json:"cash"`
	InitialCapital int64 `json:"initialCapital"`
}

// SimulationStatus is the full simulated-portfolio view: remaining
// cash plus the holdings derived from the sim book, valued at current
// prices.
type SimulationStatus struct {
	Cash           int64     `json:"cash"`
	InitialCapital int64     `json:"initialCapital"`
	Holdings       []Holding `json:"holdings"`
	MarketValue    float64   `json:"marketValue"`
	TotalAssets    float64   `json:"totalAssets"`
	RealizedPnL    float64   `json:"realizedPnl"`
}

// TradeResult describes a just-executed simulated trade.
type TradeResult struct {
	Transaction Transaction `json:"transaction"`
	Amount      int64       `json:"amount"`
	Fee         int64       `json:"fee"`
	Tax         int64       `json:"tax"`
	Cash        int64       `json:"cash"`
	RealizedPnL float64     `json:"realizedPnl,omitempty"`
}
