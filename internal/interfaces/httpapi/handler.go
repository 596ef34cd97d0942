package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
)

// Handler serves read-only scouting queries over the loaded player table.
type Handler struct {
	scoutService *usecase.ScoutService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(scoutService *usecase.ScoutService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoutService: scoutService,
		logger:       logger,
		validator:    validator.New(),
	}
}

type listPlayersQuery struct {
	League   string `validate:"omitempty,max=120"`
	Team     string `validate:"omitempty,max=120"`
	Position string `validate:"omitempty,max=60"`
}

type filterOptionsQuery struct {
	League string `validate:"omitempty,max=120"`
	Team   string `validate:"omitempty,max=120"`
}

type similarQuery struct {
	Name  string `validate:"required,max=120"`
	Team  string `validate:"omitempty,max=120"`
	Limit int    `validate:"gte=0,lte=50"`
}

type recommendQuery struct {
	Team     string `validate:"required,max=120"`
	Position string `validate:"required,max=60"`
	Limit    int    `validate:"gte=0,lte=50"`
}

type replacementQuery struct {
	Team  string `validate:"required,max=120"`
	Limit int    `validate:"gte=0,lte=50"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	values := r.URL.Query()
	query := listPlayersQuery{
		League:   strings.TrimSpace(values.Get("league")),
		Team:     strings.TrimSpace(values.Get("team")),
		Position: strings.TrimSpace(values.Get("position")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.scoutService.ListPlayers(ctx, usecase.PlayerFilter{
		League:   query.League,
		Team:     query.Team,
		Position: query.Position,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league", query.League, "team", query.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, playerToDTO(rec))
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[playerDTO]{Items: items})
}

func (h *Handler) ListFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFilterOptions")
	defer span.End()

	values := r.URL.Query()
	query := filterOptionsQuery{
		League: strings.TrimSpace(values.Get("league")),
		Team:   strings.TrimSpace(values.Get("team")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	options, err := h.scoutService.FilterOptions(ctx, query.League, query.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "list filter options failed", "league", query.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsDTO{
		Leagues:   options.Leagues,
		Teams:     options.Teams,
		Positions: options.Positions,
	})
}

func (h *Handler) FindSimilarPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindSimilarPlayers")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := similarQuery{
		Name:  strings.TrimSpace(r.PathValue("name")),
		Team:  strings.TrimSpace(r.URL.Query().Get("team")),
		Limit: limit,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoutService.FindSimilar(ctx, query.Name, query.Team, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "find similar players failed", "player_name", query.Name, "team", query.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]similarPlayerDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, similarPlayerDTO{
			Player: playerToDTO(item.Record),
			Score:  item.Score,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, similarResultDTO{
		Target:   playerToDTO(result.Target),
		Features: result.Features,
		Items:    items,
	})
}

func (h *Handler) RecommendPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecommendPlayers")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := recommendQuery{
		Team:     strings.TrimSpace(r.PathValue("team")),
		Position: strings.TrimSpace(r.URL.Query().Get("position")),
		Limit:    limit,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rec, err := h.scoutService.Recommend(ctx, query.Team, query.Position, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "recommend players failed", "team", query.Team, "position", query.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]candidateDTO, 0, len(rec.Items))
	for _, c := range rec.Items {
		items = append(items, candidateDTO{
			Player:     playerToDTO(c.Record),
			ScoutScore: c.ScoutScore,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, recommendationDTO{
		Team:      rec.Team,
		Position:  rec.Position.String(),
		Budget:    rec.Budget,
		MinBudget: rec.MinBudget,
		MaxBudget: rec.MaxBudget,
		Items:     items,
	})
}

func (h *Handler) ReplacementReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplacementReport")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := replacementQuery{
		Team:  strings.TrimSpace(r.PathValue("team")),
		Limit: limit,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.scoutService.ReplacementReport(ctx, query.Team, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "replacement report failed", "team", query.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := make([]replacementEntryDTO, 0, len(report.Entries))
	for _, entry := range report.Entries {
		candidates := make([]similarPlayerDTO, 0, len(entry.Candidates))
		for _, c := range entry.Candidates {
			candidates = append(candidates, similarPlayerDTO{
				Player: playerToDTO(c.Record),
				Score:  c.Score,
			})
		}
		entries = append(entries, replacementEntryDTO{
			Player:     playerToDTO(entry.Player),
			Candidates: candidates,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, replacementReportDTO{
		Team:  report.Team,
		Items: entries,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseLimit reads an optional limit query value. Empty means the default.
func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw)
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: limit must be >= 1", usecase.ErrInvalidInput)
	}
	return limit, nil
}
