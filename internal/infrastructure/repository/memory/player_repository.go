package memory

import (
	"context"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

// PlayerRepository is the loaded player table. It is never modified after
// construction and callers get copies.
type PlayerRepository struct {
	records []player.Record
	byTeam  map[string][]int
}

func NewPlayerRepository(records []player.Record) *PlayerRepository {
	r := &PlayerRepository{
		records: append([]player.Record(nil), records...),
		byTeam:  make(map[string][]int),
	}
	for i, rec := range r.records {
		r.byTeam[rec.Team] = append(r.byTeam[rec.Team], i)
	}
	return r
}

// LoadPlayerRepository reads the whole table from source once.
func LoadPlayerRepository(ctx context.Context, source player.Repository) (*PlayerRepository, error) {
	records, err := source.All(ctx)
	if err != nil {
		return nil, err
	}
	return NewPlayerRepository(records), nil
}

func (r *PlayerRepository) All(_ context.Context) ([]player.Record, error) {
	out := make([]player.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

// ListByTeam returns the team's rows in table order.
func (r *PlayerRepository) ListByTeam(_ context.Context, team string) ([]player.Record, error) {
	idx := r.byTeam[team]
	out := make([]player.Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *PlayerRepository) Len() int {
	return len(r.records)
}
