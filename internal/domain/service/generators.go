package service

import (
	"time"

	"FinDash/internal/domain/models"
)

// RandomSource yields uniform floats in [0, 1). *rand.Rand satisfies it,
// and tests substitute fixed sequences.
type RandomSource interface {
	Float64() float64
}

// Clock returns the current time.
type Clock func() time.Time

// HistoryGenerator produces synthetic daily price series.
type HistoryGenerator interface {
	Generate(symbol string, days int) []models.PricePoint
	BasePrice(symbol string) float64
}

// SeasonalClassifier decides whether a date is seasonally favorable for a symbol.
type SeasonalClassifier interface {
	IsFavorableSeason(date time.Time, symbol string) bool
	Patterns(date time.Time, symbol string) models.SeasonalPatterns
}
