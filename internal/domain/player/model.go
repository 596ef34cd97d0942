package player

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinAge = 15
	MaxAge = 45

	// UnknownTeam is used when a squad page has no readable header.
	UnknownTeam = "Unknown Team"
)

// Record is one scouted player row of the player table.
type Record struct {
	PlayerName     string
	Team           string
	League         string
	Position       Position
	Age            int
	MarketValueRaw string
	MarketValueEst float64
	ScrapedDate    time.Time
	Stats          Stats
}

// Stats holds optional performance counters. Zero means unknown.
type Stats struct {
	MinutesPlayed int
	Goals         int
	Assists       int
	Interceptions float64
}

// Key identifies a record inside the table. Names alone are not unique.
type Key struct {
	PlayerName string
	Team       string
}

func (r Record) Key() Key {
	return Key{PlayerName: r.PlayerName, Team: r.Team}
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.PlayerName) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(r.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if r.Position.IsZero() {
		return fmt.Errorf("player position is required")
	}
	if r.Age < MinAge || r.Age > MaxAge {
		return fmt.Errorf("player age %d outside %d-%d", r.Age, MinAge, MaxAge)
	}

	return nil
}

// Per90 scales a counter to a per-90-minutes rate. Players without minutes get 0.
func (s Stats) Per90(value float64) float64 {
	if s.MinutesPlayed <= 0 {
		return 0
	}
	return value / (float64(s.MinutesPlayed) / 90)
}
