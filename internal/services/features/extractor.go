package features

import (
	"math"

	"FinDash/internal/domain/models"
	"FinDash/pkg/util"
)

// TradingDaysPerYear annualizes daily return statistics.
const TradingDaysPerYear = 252

// ComputeLogReturns computes log returns r_t = ln(P_t / P_{t-1}).
// It returns a slice of length len(points)-1, or nil if insufficient data.
func ComputeLogReturns(points []models.PricePoint) []float64 {
	if len(points) < 2 {
		return nil
	}
	out := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Price
		cur := points[i].Price
		if prev <= 0 || cur <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

// RealizedVolatility computes annualized realized volatility over the trailing
// window using the provided number of bars per year.
func RealizedVolatility(logReturns []float64, window int, barsPerYear float64) float64 {
	if window <= 1 || len(logReturns) < window {
		return 0
	}
	sum := 0.0
	sum2 := 0.0
	for i := len(logReturns) - window; i < len(logReturns); i++ {
		r := logReturns[i]
		sum += r
		sum2 += r * r
	}
	n := float64(window)
	mean := sum / n
	variance := (sum2 - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * barsPerYear)
}

// MaxDrawdown returns the largest peak-to-trough decline as a positive fraction.
func MaxDrawdown(points []models.PricePoint) float64 {
	peak := 0.0
	worst := 0.0
	for _, p := range points {
		if p.Price > peak {
			peak = p.Price
			continue
		}
		if peak > 0 {
			if dd := (peak - p.Price) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

// Summarize derives the headline statistics shown next to a history chart.
// Percentages are rounded to two decimals.
func Summarize(points []models.PricePoint) models.HistorySummary {
	s := models.HistorySummary{Points: len(points)}
	if len(points) == 0 {
		return s
	}
	s.FirstPrice = points[0].Price
	s.LastPrice = points[len(points)-1].Price
	if s.FirstPrice > 0 {
		s.ReturnPercent = util.Round2((s.LastPrice - s.FirstPrice) / s.FirstPrice * 100)
	}
	rets := ComputeLogReturns(points)
	s.RealizedVolatility = util.Round2(RealizedVolatility(rets, len(rets), TradingDaysPerYear) * 100)
	s.MaxDrawdownPercent = util.Round2(MaxDrawdown(points) * 100)
	return s
}
