package models

// PricePoint is one generated daily bar. Date is YYYY-MM-DD.
type PricePoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// HistorySummary describes a generated series.
type HistorySummary struct {
	Points             int     `json:"points"`
	FirstPrice         float64 `json:"firstPrice"`
	LastPrice          float64 `json:"lastPrice"`
	ReturnPercent      float64 `json:"returnPercent"`
	RealizedVolatility float64 `json:"realizedVolatility"` // annualized, percent
	MaxDrawdownPercent float64 `json:"maxDrawdownPercent"`
}

// History is the payload of the history endpoint.
type History struct {
	Symbol  string         `json:"symbol"`
	Days    int            `json:"days"`
	Points  []PricePoint   `json:"points"`
	Summary HistorySummary `json:"summary"`
}
