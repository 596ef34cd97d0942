package transfermarkt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const leaguePage = `<html><body>
<table class="items"><tbody>
<tr class="odd"><td><a href="/persija-jakarta/startseite/verein/12345/saison_id/2024?x=1">Persija</a></td>
  <td><a href="/persija-jakarta/kader/verein/12345">Kader</a></td></tr>
<tr class="even"><td><a href="/persib-bandung/startseite/verein/23456/saison_id/2024">Persib</a></td>
  <td><a href="https://www.transfermarkt.co.id/persija-jakarta/startseite/verein/12345/saison_id/2024#top">dup</a></td></tr>
</tbody></table>
<a href="/bali-united/startseite/verein/99999">outside table</a>
</body></html>`

func TestExtractTeamURLs(t *testing.T) {
	got := ExtractTeamURLs(mustDoc(t, leaguePage), "https://www.transfermarkt.co.id/liga-1/startseite/wettbewerb/IN1L")
	want := []string{
		"https://www.transfermarkt.co.id/persija-jakarta/startseite/verein/12345/saison_id/2024",
		"https://www.transfermarkt.co.id/persib-bandung/startseite/verein/23456/saison_id/2024",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("team urls mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTeamURLs_MissingTable(t *testing.T) {
	got := ExtractTeamURLs(mustDoc(t, `<html><body><p>maintenance</p></body></html>`), "https://example.com")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if got := ExtractTeamURLs(nil, "https://example.com"); len(got) != 0 {
		t.Fatalf("expected empty slice for nil doc, got %#v", got)
	}
}

func squadRow(class, name, position, birth, value string) string {
	return fmt.Sprintf(`<tr class="%s">
  <td class="zentriert rueckennummer"><div class="rn_nummer">23</div></td>
  <td class="posrela"><table class="inline-table">
    <tr><td rowspan="2"><img src="x.png"></td><td class="hauptlink"><a href="/p/profil/spieler/1">%s</a></td></tr>
    <tr><td>%s</td></tr>
  </table></td>
  <td class="zentriert">%s</td>
  <td class="zentriert"><img title="Indonesia"></td>
  <td class="rechts hauptlink"><a href="/p/marktwert/spieler/1">%s</a></td>
</tr>`, class, name, position, birth, value)
}

func squadPage(header string, rows ...string) string {
	return `<html><body><header><h1> ` + header + ` </h1></header>
<table class="items"><thead><tr><th>#</th></tr></thead><tbody>` + strings.Join(rows, "\n") + `</tbody></table></body></html>`
}

func TestExtractPlayers_IsolatesBadRows(t *testing.T) {
	rows := make([]string, 0, 10)
	for i := range 10 {
		class := "odd"
		if i%2 == 1 {
			class = "even"
		}
		birth := fmt.Sprintf("12 Mei 1998 (%d)", 20+i)
		if i == 4 {
			birth = "-"
		}
		rows = append(rows, squadRow(class, fmt.Sprintf("Pemain %d", i), "Gelandang  Tengah", birth, "Rp500 Jt."))
	}

	scrapedAt := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	got := ExtractPlayers(mustDoc(t, squadPage("Persija Jakarta", rows...)), "Indonesia", scrapedAt)

	require.Equal(t, "Persija Jakarta", got.Team)
	require.Len(t, got.Players, 9)
	require.Len(t, got.Failures, 1)
	require.Equal(t, 4, got.Failures[0].Index)
	require.ErrorIs(t, got.Failures[0].Err, errMissingAge)

	first := got.Players[0]
	want := player.Record{
		PlayerName:     "Pemain 0",
		Team:           "Persija Jakarta",
		League:         "Indonesia",
		Position:       "GELANDANG TENGAH",
		Age:            20,
		MarketValueRaw: "Rp500 Jt.",
		MarketValueEst: 500_000,
		ScrapedDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "Pemain 5", got.Players[4].PlayerName)
}

func TestExtractPlayers_UnknownTeamAndMissingTable(t *testing.T) {
	got := ExtractPlayers(mustDoc(t, squadPage("", squadRow("odd", "Budi", "Bek", "(24)", "-"))), "Indonesia", time.Now())
	require.Equal(t, player.UnknownTeam, got.Team)
	require.Len(t, got.Players, 1)
	require.Equal(t, player.UnknownTeam, got.Players[0].Team)
	require.Zero(t, got.Players[0].MarketValueEst)

	empty := ExtractPlayers(mustDoc(t, `<html><body><h1>Persib</h1></body></html>`), "Indonesia", time.Now())
	require.Equal(t, "Persib", empty.Team)
	require.Empty(t, empty.Players)
	require.Empty(t, empty.Failures)
}

func TestExtractPlayers_RejectsMissingName(t *testing.T) {
	got := ExtractPlayers(mustDoc(t, squadPage("PSIS", squadRow("odd", "", "Kiper", "(30)", "Rp1 Mlyr."))), "Indonesia", time.Now())
	require.Empty(t, got.Players)
	require.Len(t, got.Failures, 1)
	require.ErrorIs(t, got.Failures[0].Err, errMissingName)
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "25", want: 25, ok: true},
		{in: " 3 Jan 2001 (23) ", want: 23, ok: true},
		{in: "16", want: 16, ok: true},
		{in: "44", want: 44, ok: true},
		{in: "15", ok: false},
		{in: "45", ok: false},
		{in: "7", ok: false},
		{in: "-", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAge(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("parseAge(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
