package scouting

import (
	"errors"
	"testing"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

func rec(name, team string, pos player.Position, age int, value float64) player.Record {
	return player.Record{PlayerName: name, Team: team, League: "Indonesia", Position: pos, Age: age, MarketValueEst: value}
}

func names(items []SimilarPlayer) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Record.PlayerName+"@"+it.Record.Team)
	}
	return out
}

func midfielders() []player.Record {
	return []player.Record{
		rec("Target", "Persija", "MF", 24, 500_000),
		rec("Close", "Persib", "MF", 24, 510_000),
		rec("Older", "PSIS", "MF", 33, 300_000),
		rec("Young", "Arema", "MF", 19, 150_000),
		rec("Star", "Bali United", "MF", 27, 2_000_000),
	}
}

func TestFindSimilar_ExcludesTargetAndRanks(t *testing.T) {
	got, err := FindSimilar(midfielders(), PlayerRef{Name: "Target", Team: "Persija"}, 10, ProfileFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %d", len(got))
	}
	if got[0].Record.PlayerName != "Close" {
		t.Fatalf("expected Close first, got %v", names(got))
	}
	for _, it := range got {
		if it.Record.PlayerName == "Target" {
			t.Fatalf("target must not appear in results: %v", names(got))
		}
		if it.Score < -100 || it.Score > 100 {
			t.Fatalf("score out of range: %v", it.Score)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("results not sorted desc: %v", got)
		}
	}
}

func TestFindSimilar_PositionInvariance(t *testing.T) {
	base := midfielders()
	want, err := FindSimilar(base, PlayerRef{Name: "Target"}, 3, ProfileFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}

	withOthers := append([]player.Record{
		rec("Keeper", "Persija", "GK", 40, 9_000_000),
		rec("Striker", "PSIS", "FW", 17, 10),
	}, base...)
	withOthers = append(withOthers, rec("Back", "Persib", "DF", 30, 4_000_000))

	got, err := FindSimilar(withOthers, PlayerRef{Name: "Target"}, 3, ProfileFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("length changed: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Record.PlayerName != want[i].Record.PlayerName || got[i].Score != want[i].Score {
			t.Fatalf("result %d changed: %+v vs %+v", i, got[i], want[i])
		}
		if got[i].Record.Position != "MF" {
			t.Fatalf("result from another position: %+v", got[i])
		}
	}
}

func TestFindSimilar_SameNameOtherTeamIsNotSelf(t *testing.T) {
	table := []player.Record{
		rec("Budi", "Persija", "MF", 24, 500_000),
		rec("Budi", "Persib", "MF", 24, 500_000),
		rec("Andi", "PSIS", "MF", 31, 100_000),
	}

	got, err := FindSimilar(table, PlayerRef{Name: "Budi", Team: "Persija"}, 5, ProfileFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", names(got))
	}
	if got[0].Record.Team != "Persib" {
		t.Fatalf("expected the other Budi first, got %v", names(got))
	}
	if got[0].Score != 100 {
		t.Fatalf("identical profile should score 100, got %v", got[0].Score)
	}

	// Without a team the first row in table order is the target.
	got, err = FindSimilar(table, PlayerRef{Name: "Budi"}, 5, ProfileFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if got[0].Record.Team != "Persib" {
		t.Fatalf("expected Persib Budi as neighbour, got %v", names(got))
	}
}

func TestFindSimilar_NotFound(t *testing.T) {
	_, err := FindSimilar(midfielders(), PlayerRef{Name: "Nobody"}, 5, ProfileFeatures)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	_, err = FindSimilar(midfielders(), PlayerRef{Name: "Target", Team: "Persib"}, 5, ProfileFeatures)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound for wrong team, got %v", err)
	}
}

func TestFindSimilar_DegenerateInputs(t *testing.T) {
	t.Run("single row pool", func(t *testing.T) {
		got, err := FindSimilar([]player.Record{rec("Solo", "PSIS", "GK", 30, 100)}, PlayerRef{Name: "Solo"}, 5, nil)
		if err != nil {
			t.Fatalf("find similar: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no results, got %v", names(got))
		}
	})

	t.Run("zero variance scores zero", func(t *testing.T) {
		table := []player.Record{
			rec("A", "X", "DF", 25, 100),
			rec("B", "Y", "DF", 25, 100),
			rec("C", "Z", "DF", 25, 100),
		}
		got, err := FindSimilar(table, PlayerRef{Name: "A"}, 5, ProfileFeatures)
		if err != nil {
			t.Fatalf("find similar: %v", err)
		}
		if len(got) != 2 || got[0].Score != 0 || got[1].Score != 0 {
			t.Fatalf("expected two zero scores, got %+v", got)
		}
		if got[0].Record.PlayerName != "B" {
			t.Fatalf("ties must keep table order, got %v", names(got))
		}
	})

	t.Run("top n limits", func(t *testing.T) {
		got, _ := FindSimilar(midfielders(), PlayerRef{Name: "Target"}, 2, ProfileFeatures)
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
		got, _ = FindSimilar(midfielders(), PlayerRef{Name: "Target"}, 0, ProfileFeatures)
		if len(got) != 0 {
			t.Fatalf("expected 0 results, got %d", len(got))
		}
	})
}

func TestFindSimilar_PerformanceFeatures(t *testing.T) {
	table := []player.Record{
		rec("Target", "Persija", "FW", 25, 500_000),
		rec("Scorer", "Persib", "FW", 25, 500_000),
		rec("Passer", "PSIS", "FW", 25, 500_000),
	}
	table[0].Stats = player.Stats{MinutesPlayed: 900, Goals: 10, Assists: 1}
	table[1].Stats = player.Stats{MinutesPlayed: 1800, Goals: 19, Assists: 2}
	table[2].Stats = player.Stats{MinutesPlayed: 900, Goals: 0, Assists: 9}

	got, err := FindSimilar(table, PlayerRef{Name: "Target"}, 2, PerformanceFeatures)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if got[0].Record.PlayerName != "Scorer" {
		t.Fatalf("expected Scorer first with performance features, got %v", names(got))
	}
}

func TestFeatureSetByName(t *testing.T) {
	if fs, ok := FeatureSetByName(" Performance "); !ok || len(fs) != 5 {
		t.Fatalf("expected performance set, got %v %v", fs.Names(), ok)
	}
	if fs, ok := FeatureSetByName(""); !ok || len(fs) != 2 {
		t.Fatalf("expected profile set by default, got %v %v", fs.Names(), ok)
	}
	if _, ok := FeatureSetByName("vibes"); ok {
		t.Fatalf("expected unknown set to fail")
	}
}
