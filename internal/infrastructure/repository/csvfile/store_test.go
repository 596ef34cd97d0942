package csvfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []player.Record {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return []player.Record{
		{
			PlayerName:     "Rizky Ridho",
			Team:           "Persija Jakarta",
			League:         "Indonesia",
			Position:       "BEK TENGAH",
			Age:            23,
			MarketValueRaw: "Rp6,95 Mlyr.",
			MarketValueEst: 6_950_000,
			ScrapedDate:    day,
		},
		{
			PlayerName:     "Marc Klok, Jr.",
			Team:           "Persib Bandung",
			League:         "Indonesia",
			Position:       "GELANDANG TENGAH",
			Age:            31,
			MarketValueRaw: "Rp3,48 Mlyr.",
			MarketValueEst: 3_480_000,
			ScrapedDate:    day,
			Stats:          player.Stats{MinutesPlayed: 2430, Goals: 4, Assists: 7, Interceptions: 21.5},
		},
	}
}

func TestEncodeDecode_PreservesRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()))

	header, _, _ := strings.Cut(buf.String(), "\n")
	require.Equal(t, strings.Join(playerColumns, ","), header)

	got, err := Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleRecords(), got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_LegacyAndLenientColumns(t *testing.T) {
	in := "player_name,team,league_country,position,age,market_value_raw,market_value_est,scraped_date\n" +
		"Budi,PSIS,Indonesia, mf ,abc,-,n/a,2026-02-30\n" +
		"Andi,PSIS,Indonesia,MF,25.0,Rp500 Jt.,500000,2026-03-01\n"

	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "Indonesia", got[0].League)
	require.Equal(t, player.Position("MF"), got[0].Position)
	require.Zero(t, got[0].Age)
	require.Zero(t, got[0].MarketValueEst)
	require.True(t, got[0].ScrapedDate.IsZero())
	require.Zero(t, got[0].Stats)

	require.Equal(t, 25, got[1].Age)
	require.Equal(t, 500_000.0, got[1].MarketValueEst)
}

func TestDecode_RejectsMissingRequiredColumn(t *testing.T) {
	_, err := Decode(strings.NewReader("player_name,team,position\nBudi,PSIS,MF\n"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader(""))
	require.Error(t, err)
}

func TestStore_ReplaceAllWritesTableAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(Config{
		ProcessedDir:   filepath.Join(dir, "processed"),
		RawDir:         filepath.Join(dir, "raw"),
		TableFileName:  "master_player_db.csv",
		SnapshotPrefix: "scouted_players",
	}, nil)

	scrapedAt := time.Date(2026, 3, 14, 21, 5, 0, 0, time.UTC)
	res, err := store.ReplaceAll(t.Context(), sampleRecords(), scrapedAt)
	require.NoError(t, err)
	require.Equal(t, 2, res.Rows)
	require.Equal(t, filepath.Join(dir, "processed", "master_player_db.csv"), res.TablePath)
	require.Equal(t, filepath.Join(dir, "raw", "scouted_players_20260314.csv"), res.SnapshotPath)

	table, err := os.ReadFile(res.TablePath)
	require.NoError(t, err)
	snapshot, err := os.ReadFile(res.SnapshotPath)
	require.NoError(t, err)
	require.Equal(t, table, snapshot)

	// A second run fully replaces the table.
	_, err = store.ReplaceAll(t.Context(), sampleRecords()[:1], scrapedAt)
	require.NoError(t, err)
	got, err := store.All(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Rizky Ridho", got[0].PlayerName)

	entries, err := os.ReadDir(filepath.Join(dir, "processed"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_AllMissingFile(t *testing.T) {
	store := NewStore(Config{ProcessedDir: t.TempDir()}, nil)
	_, err := store.All(t.Context())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
