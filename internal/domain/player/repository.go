package player

import (
	"context"
	"time"
)

// Repository exposes the loaded player table to query use cases.
type Repository interface {
	All(ctx context.Context) ([]Record, error)
}

// TeamLister is implemented by repositories that index rows by team.
type TeamLister interface {
	ListByTeam(ctx context.Context, team string) ([]Record, error)
}

// TableWriter replaces the persisted player table wholesale.
type TableWriter interface {
	ReplaceAll(ctx context.Context, records []Record, scrapedAt time.Time) (WriteResult, error)
}

// WriteResult reports where a table write landed.
type WriteResult struct {
	TablePath    string
	SnapshotPath string
	Rows         int
}
