package transfermarkt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

const (
	minRowAge = 16
	maxRowAge = 44

	squadRows = "table.items > tbody > tr.odd, table.items > tbody > tr.even"
)

var (
	errMissingName = crerr.New("player name not found")
	errMissingAge  = crerr.New("player age not found")
	parenthesisAge = regexp.MustCompile(`\((\d{1,2})\)`)
)

// RowFailure records a squad row that could not be turned into a record.
type RowFailure struct {
	Index int
	Err   error
}

type SquadExtraction struct {
	Team     string
	Players  []player.Record
	Failures []RowFailure
}

// ExtractPlayers parses every squad row of a team page. Rows fail
// independently: a bad row lands in Failures and the rest are still returned.
func ExtractPlayers(doc *goquery.Document, league string, scrapedAt time.Time) SquadExtraction {
	out := SquadExtraction{Team: player.UnknownTeam}
	if doc == nil {
		return out
	}
	out.Team = extractTeamName(doc)

	scrapedDate := time.Date(scrapedAt.Year(), scrapedAt.Month(), scrapedAt.Day(), 0, 0, 0, 0, time.UTC)
	rows := doc.Find(squadRows)
	out.Players = make([]player.Record, 0, rows.Length())
	rows.Each(func(i int, row *goquery.Selection) {
		record, err := parseSquadRow(row, out.Team, league, scrapedDate)
		if err != nil {
			out.Failures = append(out.Failures, RowFailure{Index: i, Err: err})
			return
		}
		out.Players = append(out.Players, record)
	})

	return out
}

func extractTeamName(doc *goquery.Document) string {
	name := strings.Join(strings.Fields(doc.Find("h1").First().Text()), " ")
	if name == "" {
		return player.UnknownTeam
	}
	return name
}

func parseSquadRow(row *goquery.Selection, team, league string, scrapedDate time.Time) (record player.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic parsing squad row: %v", r)
		}
	}()

	inline := row.Find("table.inline-table").First()
	name := strings.Join(strings.Fields(inline.Find("a").First().Text()), " ")
	if name == "" {
		return player.Record{}, errMissingName
	}

	age, ok := findAge(row.Find("td.zentriert").Not(".rueckennummer"))
	if !ok {
		age, ok = findAge(row.ChildrenFiltered("td").Not(".rueckennummer"))
	}
	if !ok {
		return player.Record{}, crerr.Wrapf(errMissingAge, "player %q", name)
	}

	rawValue := strings.TrimSpace(row.Find("td.rechts.hauptlink").First().Text())
	record = player.Record{
		PlayerName:     name,
		Team:           team,
		League:         league,
		Position:       player.NormalizePosition(inline.Find("td").Last().Text()),
		Age:            age,
		MarketValueRaw: rawValue,
		MarketValueEst: player.ParseMarketValue(rawValue),
		ScrapedDate:    scrapedDate,
	}
	if err := record.Validate(); err != nil {
		return player.Record{}, crerr.Wrapf(err, "player %q", name)
	}
	return record, nil
}

// findAge returns the first cell value that looks like an age. Birth date
// cells carry it as a "(25)" suffix.
func findAge(cells *goquery.Selection) (int, bool) {
	age, found := 0, false
	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if v, ok := parseAge(cell.Text()); ok {
			age, found = v, true
			return false
		}
		return true
	})
	return age, found
}

func parseAge(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if m := parenthesisAge.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < minRowAge || v > maxRowAge {
		return 0, false
	}
	return v, true
}
