package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

const dateLayout = "2006-01-02"

var playerColumns = []string{
	"player_name",
	"team",
	"league",
	"position",
	"age",
	"market_value_raw",
	"market_value_est",
	"scraped_date",
	"minutes_played",
	"goals",
	"assists",
	"interceptions",
}

// requiredColumns must be present in every table file. Stat columns are optional.
var requiredColumns = playerColumns[:8]

var legacyColumns = map[string]string{
	"league_country": "league",
}

// Encode writes records with a header row.
func Encode(w io.Writer, records []player.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(playerColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(playerColumns))
	for i, r := range records {
		row[0] = r.PlayerName
		row[1] = r.Team
		row[2] = r.League
		row[3] = r.Position.String()
		row[4] = strconv.Itoa(r.Age)
		row[5] = r.MarketValueRaw
		row[6] = formatFloat(r.MarketValueEst)
		row[7] = formatDate(r.ScrapedDate)
		row[8] = strconv.Itoa(r.Stats.MinutesPlayed)
		row[9] = strconv.Itoa(r.Stats.Goals)
		row[10] = strconv.Itoa(r.Stats.Assists)
		row[11] = formatFloat(r.Stats.Interceptions)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode reads a table file. Bad numeric cells become 0 instead of failing
// the whole load.
func Decode(r io.Reader) ([]player.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if renamed, ok := legacyColumns[name]; ok {
			name = renamed
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("table file is missing column %q", name)
		}
	}

	out := make([]player.Record, 0, 256)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		out = append(out, player.Record{
			PlayerName:     cell("player_name"),
			Team:           cell("team"),
			League:         cell("league"),
			Position:       player.NormalizePosition(cell("position")),
			Age:            parseInt(cell("age")),
			MarketValueRaw: cell("market_value_raw"),
			MarketValueEst: parseFloat(cell("market_value_est")),
			ScrapedDate:    parseDate(cell("scraped_date")),
			Stats: player.Stats{
				MinutesPlayed: parseInt(cell("minutes_played")),
				Goals:         parseInt(cell("goals")),
				Assists:       parseInt(cell("assists")),
				Interceptions: parseFloat(cell("interceptions")),
			},
		})
	}

	return out, nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseInt(v string) int {
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	// Spreadsheet exports sometimes write integers as floats ("25.0").
	f := parseFloat(v)
	return int(f)
}

func parseFloat(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseDate(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
