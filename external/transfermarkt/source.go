package transfermarkt

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
)

// Source adapts Client and the page extractors to usecase.SquadSource.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) TeamURLs(ctx context.Context, leagueURL string) ([]string, error) {
	doc, err := s.client.Fetch(ctx, leagueURL)
	if err != nil {
		return nil, classify(err)
	}
	return ExtractTeamURLs(doc, leagueURL), nil
}

func (s *Source) Squad(ctx context.Context, teamURL, league string, scrapedAt time.Time) (usecase.SquadPage, error) {
	doc, err := s.client.Fetch(ctx, teamURL)
	if err != nil {
		return usecase.SquadPage{}, classify(err)
	}

	extracted := ExtractPlayers(doc, league, scrapedAt)
	page := usecase.SquadPage{
		Team:    extracted.Team,
		Players: extracted.Players,
	}
	for _, f := range extracted.Failures {
		page.Failures = append(page.Failures, usecase.SquadRowFailure{Index: f.Index, Err: f.Err})
	}
	return page, nil
}

func classify(err error) error {
	if crerr.Is(err, ErrBlocked) {
		return crerr.Mark(err, usecase.ErrSourceBlocked)
	}
	return err
}
