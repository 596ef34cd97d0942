package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/riskibarqy/garuda-scout/internal/domain/scouting"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Age", Align: text.AlignRight},
		{Name: "Value", Align: text.AlignRight},
		{Name: "Score", Align: text.AlignRight},
	})
	return t
}

func renderPlayers(w io.Writer, records []player.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No players match the filters.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Player", "Team", "League", "Position", "Age", "Value"})
	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.PlayerName, r.Team, r.League, r.Position, r.Age, formatValue(r)})
	}
	t.AppendFooter(table.Row{"", "Total", len(records)})
	t.Render()
}

func renderSimilar(w io.Writer, result usecase.SimilarResult) {
	target := result.Target
	fmt.Fprintf(w, "Players similar to %s (%s, %s, %d, %s)\n",
		target.PlayerName, target.Team, target.Position, target.Age, formatValue(target))

	if len(result.Items) == 0 {
		fmt.Fprintln(w, "No other players share this position.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Player", "Team", "Age", "Value", "Score"})
	for i, item := range result.Items {
		r := item.Record
		t.AppendRow(table.Row{i + 1, r.PlayerName, r.Team, r.Age, formatValue(r), fmt.Sprintf("%.1f%%", item.Score)})
	}
	t.Render()
}

func renderSuggestions(w io.Writer, name string, suggestions []string) {
	fmt.Fprintf(w, "Player %q not found.\n", name)
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

func renderRecommendation(w io.Writer, rec scouting.Recommendation) {
	fmt.Fprintf(w, "%s budget %s, band %s to %s, position %s\n",
		rec.Team, formatAmount(rec.Budget), formatAmount(rec.MinBudget), formatAmount(rec.MaxBudget), rec.Position)

	if len(rec.Items) == 0 {
		fmt.Fprintln(w, "No players fit this budget band.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Player", "Team", "Age", "Value", "Score"})
	for i, c := range rec.Items {
		r := c.Record
		t.AppendRow(table.Row{i + 1, r.PlayerName, r.Team, r.Age, formatValue(r), formatAmount(c.ScoutScore)})
	}
	t.Render()
}

func renderReplacementReport(w io.Writer, report usecase.ReplacementReport) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Player", "Position", "Age", "Replacement", "Team", "Score"})
	for _, entry := range report.Entries {
		p := entry.Player
		if len(entry.Candidates) == 0 {
			t.AppendRow(table.Row{p.PlayerName, p.Position, p.Age, "-", "-", "-"})
			continue
		}
		for i, c := range entry.Candidates {
			name, pos, age := p.PlayerName, p.Position.String(), strconv.Itoa(p.Age)
			if i > 0 {
				name, pos, age = "", "", ""
			}
			t.AppendRow(table.Row{name, pos, age, c.Record.PlayerName, c.Record.Team, fmt.Sprintf("%.1f%%", c.Score)})
		}
		t.AppendSeparator()
	}
	t.SetTitle(report.Team)
	t.Render()
}

func renderScrapeReport(w io.Writer, report usecase.ScrapeReport) {
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"Leagues", report.Leagues},
		{"Leagues failed", report.LeaguesFailed},
		{"Teams", report.Teams},
		{"Teams failed", report.TeamsFailed},
		{"Rows skipped", report.RowsSkipped},
		{"Duplicates", report.Duplicates},
		{"Records", report.Records},
		{"Duration", report.Duration.Round(time.Millisecond).String()},
	})
	if report.Aborted {
		t.AppendRow(table.Row{"Aborted", report.AbortReason})
	}
	if report.Output.TablePath != "" {
		t.AppendRow(table.Row{"Table", report.Output.TablePath})
		t.AppendRow(table.Row{"Snapshot", report.Output.SnapshotPath})
	}
	t.Render()
}

func formatValue(r player.Record) string {
	if r.MarketValueRaw != "" {
		return r.MarketValueRaw
	}
	return formatAmount(r.MarketValueEst)
}

// formatAmount prints a table-unit amount with dot thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatInt(int64(v+0.5), 10)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
