package scouting

import (
	"strings"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

// Feature extracts one numeric column used for similarity.
type Feature struct {
	Name  string
	Value func(player.Record) float64
}

type FeatureSet []Feature

const (
	FeatureSetProfile     = "profile"
	FeatureSetPerformance = "performance"
)

var (
	featureAge         = Feature{Name: "age", Value: func(r player.Record) float64 { return float64(r.Age) }}
	featureMarketValue = Feature{Name: "market_value_est", Value: func(r player.Record) float64 { return r.MarketValueEst }}

	// ProfileFeatures uses only what every scraped row carries.
	ProfileFeatures = FeatureSet{featureAge, featureMarketValue}

	// PerformanceFeatures adds per-90 output when the table has stats.
	PerformanceFeatures = FeatureSet{
		featureAge,
		featureMarketValue,
		{Name: "goals_p90", Value: func(r player.Record) float64 { return r.Stats.Per90(float64(r.Stats.Goals)) }},
		{Name: "assists_p90", Value: func(r player.Record) float64 { return r.Stats.Per90(float64(r.Stats.Assists)) }},
		{Name: "interceptions_p90", Value: func(r player.Record) float64 { return r.Stats.Per90(r.Stats.Interceptions) }},
	}
)

// FeatureSetByName resolves a configured feature set name.
func FeatureSetByName(name string) (FeatureSet, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FeatureSetProfile:
		return ProfileFeatures, true
	case FeatureSetPerformance:
		return PerformanceFeatures, true
	default:
		return nil, false
	}
}

func (fs FeatureSet) Names() []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}
