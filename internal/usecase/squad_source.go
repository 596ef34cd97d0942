package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
)

// SquadSource reads league listings and team squads from the upstream site.
// Implementations throttle every request themselves.
type SquadSource interface {
	TeamURLs(ctx context.Context, leagueURL string) ([]string, error)
	Squad(ctx context.Context, teamURL, league string, scrapedAt time.Time) (SquadPage, error)
}

type SquadPage struct {
	Team     string
	Players  []player.Record
	Failures []SquadRowFailure
}

type SquadRowFailure struct {
	Index int
	Err   error
}
