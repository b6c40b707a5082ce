package models

import "time"

type Sentiment struct {
	Symbol  string  `json:"symbol"`
	Score   float64 `json:"score"`
	Label   string  `json:"label"`
	Bullish float64 `json:"bullish"`
	Bearish float64 `json:"bearish"`
	Neutral float64 `json:"neutral"`
}

type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
}

type MacroIndicator struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Previous    float64 `json:"previous"`
	Forecast    float64 `json:"forecast"`
	Unit        string  `json:"unit"`
	ReleaseDate string  `json:"releaseDate"`
}

type MacroAnalysis struct {
	Date       string   `json:"date"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// FallbackEvent is emitted whenever a response is served from fallback data.
type FallbackEvent struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Subject  string    `json:"subject"`
	Reason   string    `json:"reason"`
	Occurred time.Time `json:"occurred"`
}

// SeasonalView is the payload of the seasonal endpoint.
type SeasonalView struct {
	Symbol    string           `json:"symbol"`
	Date      string           `json:"date"`
	Favorable bool             `json:"favorable"`
	Patterns  SeasonalPatterns `json:"patterns"`
}
