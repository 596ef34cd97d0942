package scouting

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

var ErrTeamNotFound = errors.New("team not found")

// BudgetPolicy stores the affordability heuristic parameters. Values are in
// table units (thousands of the display currency).
type BudgetPolicy struct {
	SampleSize      int
	LowerMultiplier float64
	UpperMultiplier float64
	DefaultBudget   float64
}

func DefaultBudgetPolicy() BudgetPolicy {
	return BudgetPolicy{
		SampleSize:      15,
		LowerMultiplier: 0.3,
		UpperMultiplier: 2.5,
		DefaultBudget:   1_000_000,
	}
}

type Candidate struct {
	Record player.Record
	// ScoutScore is market value per year of age.
	ScoutScore float64
}

type Recommendation struct {
	Team      string
	Position  player.Position
	Budget    float64
	MinBudget float64
	MaxBudget float64
	Items     []Candidate
}

// EstimateBudget is the mean of the team's SampleSize highest market values,
// falling back to DefaultBudget when that mean is 0 or undefined.
func EstimateBudget(teamRows []player.Record, policy BudgetPolicy) float64 {
	values := make([]float64, 0, len(teamRows))
	for _, r := range teamRows {
		values = append(values, r.MarketValueEst)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	n := policy.SampleSize
	if n < 1 || n > len(values) {
		n = len(values)
	}
	if n == 0 {
		return policy.DefaultBudget
	}

	var sum float64
	for _, v := range values[:n] {
		sum += v
	}
	mean := sum / float64(n)
	if mean == 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return policy.DefaultBudget
	}
	return mean
}

// Recommend lists players from other teams at position whose market value
// falls inside the team's budget band, best value-for-age first.
// An empty band is not an error.
func Recommend(table []player.Record, team string, position player.Position, topN int, policy BudgetPolicy) (Recommendation, error) {
	team = strings.TrimSpace(team)
	position = player.NormalizePosition(position.String())

	teamRows := make([]player.Record, 0, 32)
	for _, r := range table {
		if r.Team == team {
			teamRows = append(teamRows, r)
		}
	}
	if team == "" || len(teamRows) == 0 {
		return Recommendation{}, ErrTeamNotFound
	}

	budget := EstimateBudget(teamRows, policy)
	rec := Recommendation{
		Team:      team,
		Position:  position,
		Budget:    budget,
		MinBudget: budget * policy.LowerMultiplier,
		MaxBudget: budget * policy.UpperMultiplier,
		Items:     []Candidate{},
	}

	for _, r := range table {
		if r.Position != position || r.Team == team {
			continue
		}
		if r.MarketValueEst < rec.MinBudget || r.MarketValueEst > rec.MaxBudget {
			continue
		}
		rec.Items = append(rec.Items, Candidate{Record: r, ScoutScore: scoutScore(r)})
	}
	sort.SliceStable(rec.Items, func(i, j int) bool {
		return rec.Items[i].ScoutScore > rec.Items[j].ScoutScore
	})

	if topN >= 0 && topN < len(rec.Items) {
		rec.Items = rec.Items[:topN]
	}
	return rec, nil
}

func scoutScore(r player.Record) float64 {
	if r.Age <= 0 {
		return 0
	}
	return r.MarketValueEst / float64(r.Age)
}
