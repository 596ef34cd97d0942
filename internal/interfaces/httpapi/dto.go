package httpapi

import "github.com/riskibarqy/garuda-scout/internal/domain/player"

const scrapedDateLayout = "2006-01-02"

type listDTO[T any] struct {
	Items []T `json:"items"`
}

type playerDTO struct {
	Name           string   `json:"name"`
	Team           string   `json:"team"`
	League         string   `json:"league"`
	Position       string   `json:"position"`
	Age            int      `json:"age"`
	MarketValueRaw string   `json:"marketValueRaw"`
	MarketValueEst float64  `json:"marketValueEst"`
	ScrapedDate    string   `json:"scrapedDate,omitempty"`
	Stats          statsDTO `json:"stats"`
}

type statsDTO struct {
	MinutesPlayed int     `json:"minutesPlayed"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Interceptions float64 `json:"interceptions"`
}

type filterOptionsDTO struct {
	Leagues   []string `json:"leagues"`
	Teams     []string `json:"teams"`
	Positions []string `json:"positions"`
}

type similarPlayerDTO struct {
	Player playerDTO `json:"player"`
	Score  float64   `json:"score"`
}

type similarResultDTO struct {
	Target   playerDTO          `json:"target"`
	Features []string           `json:"features"`
	Items    []similarPlayerDTO `json:"items"`
}

type candidateDTO struct {
	Player     playerDTO `json:"player"`
	ScoutScore float64   `json:"scoutScore"`
}

type recommendationDTO struct {
	Team      string         `json:"team"`
	Position  string         `json:"position"`
	Budget    float64        `json:"budget"`
	MinBudget float64        `json:"minBudget"`
	MaxBudget float64        `json:"maxBudget"`
	Items     []candidateDTO `json:"items"`
}

type replacementEntryDTO struct {
	Player     playerDTO          `json:"player"`
	Candidates []similarPlayerDTO `json:"candidates"`
}

type replacementReportDTO struct {
	Team  string                `json:"team"`
	Items []replacementEntryDTO `json:"items"`
}

func playerToDTO(r player.Record) playerDTO {
	out := playerDTO{
		Name:           r.PlayerName,
		Team:           r.Team,
		League:         r.League,
		Position:       r.Position.String(),
		Age:            r.Age,
		MarketValueRaw: r.MarketValueRaw,
		MarketValueEst: r.MarketValueEst,
		Stats: statsDTO{
			MinutesPlayed: r.Stats.MinutesPlayed,
			Goals:         r.Stats.Goals,
			Assists:       r.Stats.Assists,
			Interceptions: r.Stats.Interceptions,
		},
	}
	if !r.ScrapedDate.IsZero() {
		out.ScrapedDate = r.ScrapedDate.Format(scrapedDateLayout)
	}
	return out
}
