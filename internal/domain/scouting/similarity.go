package scouting

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRef names a query target. Team is optional; without it the first
// row in table order with that name is used.
type PlayerRef struct {
	Name string
	Team string
}

type SimilarPlayer struct {
	Record player.Record
	// Score is cosine similarity scaled to 0-100 with one decimal.
	Score float64
}

// FindSimilar ranks players at the target's position by cosine similarity of
// standardized features. Scaling is computed within that position pool on
// every call, so rows at other positions never affect the result. A negative
// topN returns the whole ranked pool.
func FindSimilar(table []player.Record, ref PlayerRef, topN int, features FeatureSet) ([]SimilarPlayer, error) {
	target, ok := Lookup(table, ref)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if len(features) == 0 {
		features = ProfileFeatures
	}

	position := table[target].Position
	pool := make([]int, 0, 64)
	self := -1
	for i, r := range table {
		if r.Position != position {
			continue
		}
		if i == target {
			self = len(pool)
		}
		pool = append(pool, i)
	}

	vectors := standardize(table, pool, features)
	type scored struct {
		row int
		cos float64
	}
	candidates := make([]scored, 0, len(pool))
	for k, row := range pool {
		if k == self {
			continue
		}
		candidates = append(candidates, scored{row: row, cos: cosine(vectors[self], vectors[k])})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].cos > candidates[j].cos
	})

	if topN < 0 || topN > len(candidates) {
		topN = len(candidates)
	}
	out := make([]SimilarPlayer, 0, topN)
	for _, c := range candidates[:topN] {
		out = append(out, SimilarPlayer{
			Record: table[c.row],
			Score:  math.Round(c.cos*1000) / 10,
		})
	}
	return out, nil
}

// Lookup returns the table index of the row ref points at.
func Lookup(table []player.Record, ref PlayerRef) (int, bool) {
	name := strings.TrimSpace(ref.Name)
	team := strings.TrimSpace(ref.Team)
	if name == "" {
		return 0, false
	}
	for i, r := range table {
		if r.PlayerName == name && (team == "" || r.Team == team) {
			return i, true
		}
	}
	return 0, false
}

// standardize returns z-scored feature vectors for the pool rows using
// population variance. Constant features scale to 0.
func standardize(table []player.Record, pool []int, features FeatureSet) [][]float64 {
	vectors := make([][]float64, len(pool))
	for k, row := range pool {
		v := make([]float64, len(features))
		for f, feature := range features {
			x := feature.Value(table[row])
			if math.IsNaN(x) || math.IsInf(x, 0) {
				x = 0
			}
			v[f] = x
		}
		vectors[k] = v
	}

	n := float64(len(pool))
	for f := range features {
		var mean float64
		for _, v := range vectors {
			mean += v[f]
		}
		mean /= n

		var variance float64
		for _, v := range vectors {
			d := v[f] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / n)

		for _, v := range vectors {
			if std < 1e-12 {
				v[f] = 0
				continue
			}
			v[f] = (v[f] - mean) / std
		}
	}
	return vectors
}

// cosine is 0 when either vector has zero norm.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
