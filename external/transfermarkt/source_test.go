package transfermarkt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestSource_WalksLeagueAndSquad(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/liga-1/startseite/wettbewerb/IN1L", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<table class="items"><tbody><tr class="odd"><td>
			<a href="/persija-jakarta/startseite/verein/12345">Persija</a></td></tr></tbody></table>`))
	})
	mux.HandleFunc("/persija-jakarta/startseite/verein/12345", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(squadPage("Persija Jakarta",
			squadRow("odd", "Rizky Ridho", "Bek Tengah", "21 Nov 2001 (23)", "Rp6,95 Mlyr."),
			squadRow("even", "Broken", "Bek", "-", "-"),
		)))
	})
	mux.HandleFunc("/blocked/startseite/verein/1", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	source := NewSource(newTestClient(t, srv.URL, &sleepRecorder{}))

	urls, err := source.TeamURLs(t.Context(), srv.URL+"/liga-1/startseite/wettbewerb/IN1L")
	require.NoError(t, err)
	require.Equal(t, []string{srv.URL + "/persija-jakarta/startseite/verein/12345"}, urls)

	page, err := source.Squad(t.Context(), urls[0], "Indonesia", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "Persija Jakarta", page.Team)
	require.Len(t, page.Players, 1)
	require.Equal(t, 6_950_000.0, page.Players[0].MarketValueEst)
	require.Len(t, page.Failures, 1)
	require.Equal(t, 1, page.Failures[0].Index)

	_, err = source.Squad(t.Context(), srv.URL+"/blocked/startseite/verein/1", "Indonesia", time.Now())
	require.True(t, crerr.Is(err, usecase.ErrSourceBlocked), "expected blocked mark, got %v", err)
}
