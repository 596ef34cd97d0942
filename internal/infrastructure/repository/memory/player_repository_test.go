package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

type stubSource struct {
	records []player.Record
	err     error
}

func (s stubSource) All(context.Context) ([]player.Record, error) {
	return s.records, s.err
}

func TestPlayerRepository_ListByTeamKeepsTableOrder(t *testing.T) {
	repo := NewPlayerRepository([]player.Record{
		{PlayerName: "A", Team: "Persija"},
		{PlayerName: "B", Team: "Persib"},
		{PlayerName: "C", Team: "Persija"},
	})

	got, err := repo.ListByTeam(t.Context(), "Persija")
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(got) != 2 || got[0].PlayerName != "A" || got[1].PlayerName != "C" {
		t.Fatalf("unexpected team rows: %+v", got)
	}

	none, _ := repo.ListByTeam(t.Context(), "Arema")
	if len(none) != 0 {
		t.Fatalf("expected no rows for unknown team, got %d", len(none))
	}
}

func TestPlayerRepository_KeepsOwnCopyOfInput(t *testing.T) {
	input := []player.Record{{PlayerName: "A", Team: "Persija"}}
	repo := NewPlayerRepository(input)
	input[0].Team = "Persib"

	got, _ := repo.ListByTeam(t.Context(), "Persija")
	if len(got) != 1 || got[0].Team != "Persija" {
		t.Fatalf("table changed through caller slice: %+v", got)
	}
}

func TestPlayerRepository_AllReturnsCopy(t *testing.T) {
	repo := NewPlayerRepository([]player.Record{{PlayerName: "A", Team: "Persija"}})

	rows, _ := repo.All(t.Context())
	rows[0].PlayerName = "mutated"

	again, _ := repo.All(t.Context())
	if again[0].PlayerName != "A" {
		t.Fatalf("table was mutated through returned slice")
	}
}

func TestLoadPlayerRepository(t *testing.T) {
	repo, err := LoadPlayerRepository(t.Context(), stubSource{records: []player.Record{{PlayerName: "A", Team: "X"}}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", repo.Len())
	}

	boom := errors.New("boom")
	if _, err := LoadPlayerRepository(t.Context(), stubSource{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}
