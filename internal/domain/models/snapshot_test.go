package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCloneKeepsNilAndEmptyApart(t *testing.T) {
	s := Snapshot{
		Support:        []float64{},
		RecentActivity: []Activity{},
		AIAnalysis:     &AIAnalysis{Correlations: []Correlation{}},
	}
	out := s.Clone()

	require.NotNil(t, out.Support)
	assert.Empty(t, out.Support)
	assert.Nil(t, out.Resistance)
	require.NotNil(t, out.RecentActivity)
	assert.Nil(t, out.CalendarSpreads)
	require.NotNil(t, out.AIAnalysis.Correlations)
	assert.Nil(t, out.AIAnalysis.Risk.Factors)
}

func TestSnapshotCloneDoesNotAlias(t *testing.T) {
	s := Snapshot{
		Support:          []float64{1, 2},
		CalendarSpreads:  []CalendarSpread{{FrontMonth: "Dec"}},
		SeasonalPatterns: &SeasonalPatterns{CurrentPhase: "bullish"},
	}
	out := s.Clone()
	out.Support[0] = 9
	out.CalendarSpreads[0].FrontMonth = "Mar"
	out.SeasonalPatterns.CurrentPhase = "bearish"

	assert.Equal(t, 1.0, s.Support[0])
	assert.Equal(t, "Dec", s.CalendarSpreads[0].FrontMonth)
	assert.Equal(t, "bullish", s.SeasonalPatterns.CurrentPhase)
}

func TestSnapshotEmptyListsSurviveJSON(t *testing.T) {
	raw, err := json.Marshal(Snapshot{RecentActivity: []Activity{}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"recentActivity":[]`)
	assert.Contains(t, string(raw), `"calendarSpreads":null`)

	var back Snapshot
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.NotNil(t, back.RecentActivity)
	assert.Nil(t, back.CalendarSpreads)
}
