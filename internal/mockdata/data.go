package mockdata

import "FinDash/internal/domain/models"

// DefaultSnapshots returns the hand-authored snapshots for the curated
// futures universe. Each call builds new values.
func DefaultSnapshots() []models.Snapshot {
	return []models.Snapshot{
		{
			Symbol:             "ES",
			Name:               "E-mini S&P 500",
			CurrentPrice:       5657.75,
			DailyChange:        -17.25,
			DailyChangePercent: -0.30,
			Volume:             1482356,
			OpenInterest:       2245871,
			Volatility:         14.8,
			Support:            []float64{5608.22, 5575.50, 5540.00},
			Resistance:         []float64{5690.25, 5725.00, 5760.50},
			Sentiment:          0.35,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Index futures are consolidating below 5700 after a two-week advance, with dip buyers defending the 5600 area.",
				TechnicalAnalysis:   "Price holds above the 50-day average near 5590. A close above 5690 reopens the path to the 5760 swing high; losing 5608 exposes 5540.",
				FundamentalAnalysis: "Earnings revisions remain positive for large-cap technology while rate-cut expectations have been pared back after firmer services inflation.",
				Outlook:             "Cautiously constructive while 5608 holds.",
				Correlations: []models.Correlation{
					{Asset: "NQ", Coefficient: 0.94},
					{Asset: "ZN", Coefficient: -0.31},
					{Asset: "VIX", Coefficient: -0.82},
				},
				Risk: models.RiskAssessment{
					Level:   "moderate",
					Score:   0.45,
					Factors: []string{"CPI release", "Mega-cap earnings concentration", "Quarter-end rebalancing"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 48.25, ZScore: 0.62},
				{FrontMonth: "Mar", BackMonth: "Jun", Spread: 46.75, ZScore: 0.41},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Bullish",
				Consistency:   "73%",
				AverageReturn: "+1.8%",
			},
			RecentActivity: []models.Activity{
				{Time: "15:45", Price: 5657.75, Volume: 1250, Note: "Late selling into the close"},
				{Time: "15:30", Price: 5662.50, Volume: 980, Note: "Block trade at offer"},
				{Time: "15:15", Price: 5668.00, Volume: 1420, Note: "Rejected at session VWAP"},
				{Time: "15:00", Price: 5671.25, Volume: 860, Note: "Range high retest"},
			},
		},
		{
			Symbol:             "NQ",
			Name:               "E-mini Nasdaq-100",
			CurrentPrice:       19842.50,
			DailyChange:        86.25,
			DailyChangePercent: 0.44,
			Volume:             612904,
			OpenInterest:       254318,
			Volatility:         19.6,
			Support:            []float64{19710.00, 19580.50, 19425.00},
			Resistance:         []float64{19950.00, 20100.25, 20275.00},
			Sentiment:          0.52,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Technology leadership resumed with semiconductors outperforming; the contract is pressing toward the 20000 handle.",
				TechnicalAnalysis:   "Higher lows since the 19425 pivot. Momentum is positive but extended on the hourly chart; 19950 is the first supply zone.",
				FundamentalAnalysis: "AI capex guidance keeps earnings momentum strong. Higher real yields are the main valuation headwind.",
				Outlook:             "Bullish bias, expect volatility near 20000.",
				Correlations: []models.Correlation{
					{Asset: "ES", Coefficient: 0.94},
					{Asset: "SOX", Coefficient: 0.88},
					{Asset: "ZN", Coefficient: -0.36},
				},
				Risk: models.RiskAssessment{
					Level:   "elevated",
					Score:   0.58,
					Factors: []string{"Semiconductor export rules", "Crowded positioning", "Real yield spikes"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 182.50, ZScore: 0.95},
				{FrontMonth: "Mar", BackMonth: "Jun", Spread: 176.25, ZScore: 0.70},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Bullish",
				Consistency:   "69%",
				AverageReturn: "+2.3%",
			},
			RecentActivity: []models.Activity{
				{Time: "15:45", Price: 19842.50, Volume: 640, Note: "Bid stacked at 19840"},
				{Time: "15:30", Price: 19831.75, Volume: 515, Note: "Breakout above morning high"},
				{Time: "15:15", Price: 19804.00, Volume: 720, Note: "Semis lead higher"},
				{Time: "15:00", Price: 19788.25, Volume: 455, Note: "Pullback absorbed"},
			},
		},
		{
			Symbol:             "YM",
			Name:               "E-mini Dow",
			CurrentPrice:       42215.00,
			DailyChange:        -58.00,
			DailyChangePercent: -0.14,
			Volume:             118452,
			OpenInterest:       86730,
			Volatility:         12.9,
			Support:            []float64{42020.00, 41850.00, 41600.00},
			Resistance:         []float64{42400.00, 42650.00, 42900.00},
			Sentiment:          0.12,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "The Dow lags the broader tape as healthcare and energy weigh on the price-weighted index.",
				TechnicalAnalysis:   "Sideways between 42020 and 42400 for six sessions. Range resolution likely sets the next 400-point move.",
				FundamentalAnalysis: "Industrial order books are stable; consumer staples face margin pressure from input costs.",
				Outlook:             "Neutral inside the range.",
				Correlations: []models.Correlation{
					{Asset: "ES", Coefficient: 0.89},
					{Asset: "RTY", Coefficient: 0.71},
				},
				Risk: models.RiskAssessment{
					Level:   "low",
					Score:   0.30,
					Factors: []string{"Single-stock weight concentration", "Sector rotation"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 312.00, ZScore: 0.18},
				{FrontMonth: "Mar", BackMonth: "Jun", Spread: 305.00, ZScore: -0.07},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Bullish",
				Consistency:   "66%",
				AverageReturn: "+1.4%",
			},
			RecentActivity: []models.Activity{
				{Time: "15:45", Price: 42215.00, Volume: 210, Note: "Drift lower into close"},
				{Time: "15:30", Price: 42238.00, Volume: 185, Note: "Range midpoint"},
				{Time: "15:15", Price: 42262.00, Volume: 240, Note: "Sellers at 42270"},
				{Time: "15:00", Price: 42249.00, Volume: 160, Note: "Quiet tape"},
			},
		},
		{
			Symbol:             "CL",
			Name:               "WTI Crude Oil",
			CurrentPrice:       78.42,
			DailyChange:        1.12,
			DailyChangePercent: 1.45,
			Volume:             402117,
			OpenInterest:       1532904,
			Volatility:         31.2,
			Support:            []float64{77.60, 76.85, 75.90},
			Resistance:         []float64{79.25, 80.10, 81.40},
			Sentiment:          0.18,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Crude rallied after a larger-than-expected inventory draw and renewed supply discipline headlines.",
				TechnicalAnalysis:   "Reclaimed the 20-day average at 77.60. Resistance at 79.25 capped the last two rallies; a weekly close above it targets 81.40.",
				FundamentalAnalysis: "Refinery runs are high into the driving-season tail. Demand data from Asia remains mixed.",
				Outlook:             "Range-bound with upside skew.",
				Correlations: []models.Correlation{
					{Asset: "BZ", Coefficient: 0.97},
					{Asset: "DX", Coefficient: -0.42},
					{Asset: "XLE", Coefficient: 0.78},
				},
				Risk: models.RiskAssessment{
					Level:   "high",
					Score:   0.67,
					Factors: []string{"OPEC+ meeting", "Hurricane season", "Weekly EIA inventory data"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Nov", BackMonth: "Dec", Spread: 0.42, ZScore: 1.35},
				{FrontMonth: "Dec", BackMonth: "Jan", Spread: 0.37, ZScore: 1.12},
				{FrontMonth: "Nov", BackMonth: "Mar", Spread: 1.18, ZScore: 1.48},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Neutral",
				Consistency:   "58%",
				AverageReturn: "-0.6%",
			},
			RecentActivity: []models.Activity{
				{Time: "14:25", Price: 78.42, Volume: 1820, Note: "Settlement window buying"},
				{Time: "14:10", Price: 78.31, Volume: 1340, Note: "Test of 78.30 pivot"},
				{Time: "13:55", Price: 78.05, Volume: 2110, Note: "Post-EIA extension"},
				{Time: "13:40", Price: 77.88, Volume: 1560, Note: "Held above 20-day average"},
			},
		},
		{
			Symbol:             "NG",
			Name:               "Henry Hub Natural Gas",
			CurrentPrice:       2.934,
			DailyChange:        -0.071,
			DailyChangePercent: -2.36,
			Volume:             288430,
			OpenInterest:       1564120,
			Volatility:         54.7,
			Support:            []float64{2.880, 2.810, 2.745},
			Resistance:         []float64{3.010, 3.095, 3.180},
			Sentiment:          -0.42,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Natural gas slipped as mild forecasts trimmed heating demand expectations.",
				TechnicalAnalysis:   "Failed at the 3.00 psychological level again. Downside momentum targets 2.81 if 2.88 gives way.",
				FundamentalAnalysis: "Storage sits above the five-year average; LNG feedgas demand is the main bullish offset.",
				Outlook:             "Bearish near term.",
				Correlations: []models.Correlation{
					{Asset: "TTF", Coefficient: 0.46},
					{Asset: "CL", Coefficient: 0.21},
				},
				Risk: models.RiskAssessment{
					Level:   "high",
					Score:   0.74,
					Factors: []string{"Weather model shifts", "Storage report", "LNG outages"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Nov", BackMonth: "Jan", Spread: -0.612, ZScore: -1.22},
				{FrontMonth: "Jan", BackMonth: "Apr", Spread: 0.485, ZScore: 0.88},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Bullish",
				Consistency:   "61%",
				AverageReturn: "+4.1%",
			},
			RecentActivity: []models.Activity{
				{Time: "14:25", Price: 2.934, Volume: 2210, Note: "Weak close"},
				{Time: "14:10", Price: 2.951, Volume: 1870, Note: "Selling below 2.96"},
				{Time: "13:55", Price: 2.972, Volume: 1640, Note: "Bounce faded"},
				{Time: "13:40", Price: 2.965, Volume: 1990, Note: "Forecast update"},
			},
		},
		{
			Symbol:             "GC",
			Name:               "Gold",
			CurrentPrice:       2651.30,
			DailyChange:        14.70,
			DailyChangePercent: 0.56,
			Volume:             214506,
			OpenInterest:       512388,
			Volatility:         15.9,
			Support:            []float64{2632.00, 2610.50, 2585.00},
			Resistance:         []float64{2668.40, 2690.00, 2715.80},
			Sentiment:          0.61,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Gold extended gains on central-bank demand and a softer dollar.",
				TechnicalAnalysis:   "Trend channel intact since the summer. 2632 is the breakout retest level; 2668 is the record-high zone.",
				FundamentalAnalysis: "Official-sector purchases and geopolitical hedging offset the drag from elevated real yields.",
				Outlook:             "Bullish with shallow pullbacks.",
				Correlations: []models.Correlation{
					{Asset: "SI", Coefficient: 0.81},
					{Asset: "DX", Coefficient: -0.58},
					{Asset: "TIPS", Coefficient: 0.44},
				},
				Risk: models.RiskAssessment{
					Level:   "moderate",
					Score:   0.40,
					Factors: []string{"Dollar rebound", "ETF outflows", "Fed speakers"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Feb", Spread: 21.40, ZScore: 0.33},
				{FrontMonth: "Feb", BackMonth: "Apr", Spread: 20.90, ZScore: 0.27},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Neutral",
				Consistency:   "55%",
				AverageReturn: "+0.4%",
			},
			RecentActivity: []models.Activity{
				{Time: "13:25", Price: 2651.30, Volume: 940, Note: "Firm into settlement"},
				{Time: "13:10", Price: 2648.90, Volume: 780, Note: "Dollar softens"},
				{Time: "12:55", Price: 2644.20, Volume: 1020, Note: "Dip bought at 2642"},
				{Time: "12:40", Price: 2646.60, Volume: 690, Note: "London fix flows"},
			},
		},
		{
			Symbol:             "SI",
			Name:               "Silver",
			CurrentPrice:       31.245,
			DailyChange:        -0.215,
			DailyChangePercent: -0.68,
			Volume:             78215,
			OpenInterest:       148902,
			Volatility:         27.4,
			Support:            []float64{30.900, 30.550, 30.100},
			Resistance:         []float64{31.600, 32.050, 32.500},
			Sentiment:          0.22,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Silver underperformed gold as industrial metals softened.",
				TechnicalAnalysis:   "Pullback from 31.60 resistance; the 30.90 shelf is the key level for the uptrend.",
				FundamentalAnalysis: "Solar demand supports the deficit narrative while Chinese industrial data disappointed.",
				Outlook:             "Neutral to bullish above 30.90.",
				Correlations: []models.Correlation{
					{Asset: "GC", Coefficient: 0.81},
					{Asset: "HG", Coefficient: 0.52},
				},
				Risk: models.RiskAssessment{
					Level:   "elevated",
					Score:   0.55,
					Factors: []string{"Industrial demand data", "Gold/silver ratio mean reversion"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 0.335, ZScore: 0.21},
				{FrontMonth: "Mar", BackMonth: "May", Spread: 0.228, ZScore: 0.09},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Neutral",
				Consistency:   "52%",
				AverageReturn: "+0.2%",
			},
			RecentActivity: []models.Activity{
				{Time: "13:25", Price: 31.245, Volume: 410, Note: "Offered into settlement"},
				{Time: "13:10", Price: 31.310, Volume: 355, Note: "Lagging gold"},
				{Time: "12:55", Price: 31.385, Volume: 520, Note: "Copper weakness spills over"},
				{Time: "12:40", Price: 31.420, Volume: 300, Note: "Range top rejection"},
			},
		},
		{
			Symbol:             "ZN",
			Name:               "10-Year T-Note",
			CurrentPrice:       110.52,
			DailyChange:        0.23,
			DailyChangePercent: 0.21,
			Volume:             1604218,
			OpenInterest:       4412095,
			Volatility:         6.2,
			Support:            []float64{110.20, 109.88, 109.50},
			Resistance:         []float64{110.80, 111.15, 111.50},
			Sentiment:          -0.08,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "Treasuries firmed as softer retail sales data revived rate-cut pricing.",
				TechnicalAnalysis:   "Bounced from the 110.20 support. 110.80 is the 50-day average and first resistance.",
				FundamentalAnalysis: "Term premium remains elevated on supply; growth data is cooling at the margin.",
				Outlook:             "Range trade between 110.20 and 111.15.",
				Correlations: []models.Correlation{
					{Asset: "ZB", Coefficient: 0.93},
					{Asset: "ES", Coefficient: -0.31},
				},
				Risk: models.RiskAssessment{
					Level:   "moderate",
					Score:   0.38,
					Factors: []string{"Treasury refunding", "Payrolls", "Fed minutes"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 0.28, ZScore: -0.44},
				{FrontMonth: "Mar", BackMonth: "Jun", Spread: 0.25, ZScore: -0.51},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Neutral",
				Consistency:   "54%",
				AverageReturn: "+0.1%",
			},
			RecentActivity: []models.Activity{
				{Time: "14:45", Price: 110.52, Volume: 5120, Note: "Bid into close"},
				{Time: "14:30", Price: 110.47, Volume: 4380, Note: "Post-auction follow-through"},
				{Time: "14:15", Price: 110.41, Volume: 6020, Note: "Auction tail smaller than feared"},
				{Time: "14:00", Price: 110.36, Volume: 3910, Note: "Pre-auction concession"},
			},
		},
		{
			Symbol:             "6E",
			Name:               "Euro FX",
			CurrentPrice:       1.0852,
			DailyChange:        -0.0031,
			DailyChangePercent: -0.28,
			Volume:             198342,
			OpenInterest:       702551,
			Volatility:         7.1,
			Support:            []float64{1.0815, 1.0780, 1.0735},
			Resistance:         []float64{1.0890, 1.0925, 1.0970},
			Sentiment:          -0.15,
			AIAnalysis: &models.AIAnalysis{
				Summary:             "The euro eased as rate differentials widened after hawkish Fed commentary.",
				TechnicalAnalysis:   "Lower highs since 1.0970. Holding 1.0815 keeps the range intact; below it 1.0735 comes into view.",
				FundamentalAnalysis: "Eurozone PMIs stabilized but remain below 50; ECB guidance leans toward further easing.",
				Outlook:             "Mildly bearish.",
				Correlations: []models.Correlation{
					{Asset: "DX", Coefficient: -0.96},
					{Asset: "6B", Coefficient: 0.74},
				},
				Risk: models.RiskAssessment{
					Level:   "low",
					Score:   0.28,
					Factors: []string{"ECB meeting", "US CPI"},
				},
			},
			CalendarSpreads: []models.CalendarSpread{
				{FrontMonth: "Dec", BackMonth: "Mar", Spread: 0.0041, ZScore: 0.15},
				{FrontMonth: "Mar", BackMonth: "Jun", Spread: 0.0039, ZScore: 0.11},
			},
			SeasonalPatterns: &models.SeasonalPatterns{
				CurrentPhase:  "Seasonally Neutral",
				Consistency:   "51%",
				AverageReturn: "-0.1%",
			},
			RecentActivity: []models.Activity{
				{Time: "15:45", Price: 1.0852, Volume: 820, Note: "Drift lower"},
				{Time: "15:30", Price: 1.0858, Volume: 690, Note: "Fix flows"},
				{Time: "15:15", Price: 1.0861, Volume: 940, Note: "Failed at 1.0865"},
				{Time: "15:00", Price: 1.0856, Volume: 610, Note: "Quiet session"},
			},
		},
	}
}
