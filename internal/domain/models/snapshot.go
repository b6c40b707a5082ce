package models

import "slices"

// Snapshot is the analytical record the futures page renders for one instrument.
// The same shape is used for curated catalog entries, upstream payloads and
// merged responses; composite fields left nil are treated as absent, while an
// empty list is a present value and is never replaced.
type Snapshot struct {
	Symbol             string            `json:"symbol,omitempty" yaml:"symbol"`
	Name               string            `json:"name,omitempty" yaml:"name"`
	CurrentPrice       float64           `json:"currentPrice" yaml:"current_price"`
	DailyChange        float64           `json:"dailyChange" yaml:"daily_change"`
	DailyChangePercent float64           `json:"dailyChangePercent" yaml:"daily_change_percent"`
	Volume             int64             `json:"volume" yaml:"volume"`
	OpenInterest       int64             `json:"openInterest" yaml:"open_interest"`
	Volatility         float64           `json:"volatility" yaml:"volatility"`
	Support            []float64         `json:"support" yaml:"support"`
	Resistance         []float64         `json:"resistance" yaml:"resistance"`
	Sentiment          float64           `json:"sentiment" yaml:"sentiment"`
	AIAnalysis         *AIAnalysis       `json:"aiAnalysis,omitempty" yaml:"ai_analysis"`
	CalendarSpreads    []CalendarSpread  `json:"calendarSpreads" yaml:"calendar_spreads"`
	SeasonalPatterns   *SeasonalPatterns `json:"seasonalPatterns,omitempty" yaml:"seasonal_patterns"`
	RecentActivity     []Activity        `json:"recentActivity" yaml:"recent_activity"`
}

// AIAnalysis is free narrative text plus correlation and risk notes.
type AIAnalysis struct {
	Summary             string         `json:"summary" yaml:"summary"`
	TechnicalAnalysis   string         `json:"technicalAnalysis" yaml:"technical_analysis"`
	FundamentalAnalysis string         `json:"fundamentalAnalysis" yaml:"fundamental_analysis"`
	Outlook             string         `json:"outlook" yaml:"outlook"`
	Correlations        []Correlation  `json:"correlations" yaml:"correlations"`
	Risk                RiskAssessment `json:"risk" yaml:"risk"`
}

type Correlation struct {
	Asset       string  `json:"asset" yaml:"asset"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

type RiskAssessment struct {
	Level   string   `json:"level" yaml:"level"`
	Score   float64  `json:"score" yaml:"score"`
	Factors []string `json:"factors" yaml:"factors"`
}

// CalendarSpread is the price difference between two expirations of the same underlying.
type CalendarSpread struct {
	FrontMonth string  `json:"frontMonth" yaml:"front_month"`
	BackMonth  string  `json:"backMonth" yaml:"back_month"`
	Spread     float64 `json:"spread" yaml:"spread"`
	ZScore     float64 `json:"zScore" yaml:"z_score"`
}

type SeasonalPatterns struct {
	CurrentPhase  string `json:"currentPhase" yaml:"current_phase"`
	Consistency   string `json:"consistency" yaml:"consistency"`
	AverageReturn string `json:"averageReturn" yaml:"average_return"`
}

// Activity is one recent trade tick. Slices of Activity are ordered newest first.
type Activity struct {
	Time   string  `json:"time" yaml:"time"`
	Price  float64 `json:"price" yaml:"price"`
	Volume int64   `json:"volume" yaml:"volume"`
	Note   string  `json:"note" yaml:"note"`
}

// Clone returns a deep copy so callers never share slices with the catalog.
// Nil slices stay nil and empty ones stay empty, so "absent" and "present but
// empty" survive the copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Support = slices.Clone(s.Support)
	out.Resistance = slices.Clone(s.Resistance)
	out.AIAnalysis = s.AIAnalysis.Clone()
	out.CalendarSpreads = slices.Clone(s.CalendarSpreads)
	if s.SeasonalPatterns != nil {
		sp := *s.SeasonalPatterns
		out.SeasonalPatterns = &sp
	}
	out.RecentActivity = slices.Clone(s.RecentActivity)
	return out
}

// Clone deep-copies the analysis; nil stays nil.
func (a *AIAnalysis) Clone() *AIAnalysis {
	if a == nil {
		return nil
	}
	out := *a
	out.Correlations = slices.Clone(a.Correlations)
	out.Risk.Factors = slices.Clone(a.Risk.Factors)
	return &out
}
