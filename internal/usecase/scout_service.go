package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/antzucaro/matchr"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/riskibarqy/garuda-scout/internal/domain/scouting"
	"github.com/riskibarqy/garuda-scout/internal/platform/cache"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
)

const (
	DefaultResultLimit = 5
	MaxResultLimit     = 50

	suggestionThreshold = 0.8
	scoutCachePrefix    = "scout:"
)

type ScoutConfig struct {
	Policy   scouting.BudgetPolicy
	Features scouting.FeatureSet
	// Workers bounds the replacement report fan-out.
	Workers int
	// Cache memoizes query results. Nil disables caching.
	Cache *cache.Store
}

// ScoutService answers read-only queries over the loaded player table.
type ScoutService struct {
	repo   player.Repository
	cfg    ScoutConfig
	logger *logging.Logger
}

type SimilarResult struct {
	Target   player.Record
	Features []string
	Items    []scouting.SimilarPlayer
}

type PlayerFilter struct {
	League   string
	Team     string
	Position string
}

// FilterOptions lists the values available at each level of the
// league, team, position filter hierarchy.
type FilterOptions struct {
	Leagues   []string
	Teams     []string
	Positions []string
}

type ReplacementEntry struct {
	Player     player.Record
	Candidates []scouting.SimilarPlayer
}

type ReplacementReport struct {
	Team    string
	Entries []ReplacementEntry
}

func NewScoutService(repo player.Repository, cfg ScoutConfig, logger *logging.Logger) *ScoutService {
	if logger == nil {
		logger = logging.Default()
	}
	if len(cfg.Features) == 0 {
		cfg.Features = scouting.ProfileFeatures
	}
	if cfg.Policy == (scouting.BudgetPolicy{}) {
		cfg.Policy = scouting.DefaultBudgetPolicy()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	return &ScoutService{repo: repo, cfg: cfg, logger: logger}
}

func (s *ScoutService) FindSimilar(ctx context.Context, name, team string, limit int) (SimilarResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.FindSimilar")
	defer span.End()

	name = strings.TrimSpace(name)
	team = strings.TrimSpace(team)
	if name == "" {
		return SimilarResult{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return SimilarResult{}, err
	}

	key := fmt.Sprintf("%ssimilar:%q|%q|%q|%d", scoutCachePrefix, strings.Join(s.cfg.Features.Names(), ","), name, team, limit)
	return cache.Load(ctx, s.cfg.Cache, key, func(ctx context.Context) (SimilarResult, error) {
		table, err := s.table(ctx)
		if err != nil {
			return SimilarResult{}, err
		}

		ref := scouting.PlayerRef{Name: name, Team: team}
		items, err := scouting.FindSimilar(table, ref, limit, s.cfg.Features)
		if err != nil {
			if errors.Is(err, scouting.ErrPlayerNotFound) {
				return SimilarResult{}, fmt.Errorf("%w: %w: name=%s team=%s", ErrNotFound, err, name, team)
			}
			return SimilarResult{}, fmt.Errorf("find similar players: %w", err)
		}

		idx, _ := scouting.Lookup(table, ref)
		return SimilarResult{
			Target:   table[idx],
			Features: s.cfg.Features.Names(),
			Items:    items,
		}, nil
	})
}

func (s *ScoutService) Recommend(ctx context.Context, team, position string, limit int) (scouting.Recommendation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.Recommend")
	defer span.End()

	team = strings.TrimSpace(team)
	pos := player.NormalizePosition(position)
	if team == "" {
		return scouting.Recommendation{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if pos.IsZero() {
		return scouting.Recommendation{}, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return scouting.Recommendation{}, err
	}

	key := fmt.Sprintf("%srecommend:%q|%q|%d", scoutCachePrefix, team, pos.String(), limit)
	return cache.Load(ctx, s.cfg.Cache, key, func(ctx context.Context) (scouting.Recommendation, error) {
		table, err := s.table(ctx)
		if err != nil {
			return scouting.Recommendation{}, err
		}

		rec, err := scouting.Recommend(table, team, pos, limit, s.cfg.Policy)
		if err != nil {
			if errors.Is(err, scouting.ErrTeamNotFound) {
				return scouting.Recommendation{}, fmt.Errorf("%w: %w: team=%s", ErrNotFound, err, team)
			}
			return scouting.Recommendation{}, fmt.Errorf("recommend players: %w", err)
		}
		return rec, nil
	})
}

// ListPlayers returns table rows matching every non-empty filter field, in table order.
func (s *ScoutService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.ListPlayers")
	defer span.End()

	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	league := strings.TrimSpace(filter.League)
	team := strings.TrimSpace(filter.Team)
	pos := player.NormalizePosition(filter.Position)

	out := make([]player.Record, 0, len(table))
	for _, r := range table {
		if league != "" && r.League != league {
			continue
		}
		if team != "" && r.Team != team {
			continue
		}
		if !pos.IsZero() && r.Position != pos {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *ScoutService) FilterOptions(ctx context.Context, league, team string) (FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.FilterOptions")
	defer span.End()

	table, err := s.table(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	league = strings.TrimSpace(league)
	team = strings.TrimSpace(team)
	leagues := make(map[string]struct{})
	teams := make(map[string]struct{})
	positions := make(map[string]struct{})
	for _, r := range table {
		leagues[r.League] = struct{}{}
		if league != "" && r.League != league {
			continue
		}
		teams[r.Team] = struct{}{}
		if team != "" && r.Team != team {
			continue
		}
		positions[r.Position.String()] = struct{}{}
	}

	return FilterOptions{
		Leagues:   sortedKeys(leagues),
		Teams:     sortedKeys(teams),
		Positions: sortedKeys(positions),
	}, nil
}

// SuggestNames returns table names close to name by Jaro-Winkler distance,
// best match first.
func (s *ScoutService) SuggestNames(ctx context.Context, name string, limit int) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.SuggestNames")
	defer span.End()

	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return []string{}, nil
	}
	if limit < 1 {
		limit = DefaultResultLimit
	}

	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	type match struct {
		name  string
		score float64
	}
	seen := make(map[string]struct{}, len(table))
	matches := make([]match, 0, 16)
	for _, r := range table {
		if _, ok := seen[r.PlayerName]; ok {
			continue
		}
		seen[r.PlayerName] = struct{}{}
		score := matchr.JaroWinkler(query, strings.ToLower(r.PlayerName), false)
		if score >= suggestionThreshold {
			matches = append(matches, match{name: r.PlayerName, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.name)
	}
	return out, nil
}

// ReplacementReport finds, for every player of team, the most similar
// players from other teams. Squad members are processed concurrently.
func (s *ScoutService) ReplacementReport(ctx context.Context, team string, limit int) (ReplacementReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.ReplacementReport")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return ReplacementReport{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return ReplacementReport{}, err
	}

	table, err := s.table(ctx)
	if err != nil {
		return ReplacementReport{}, err
	}

	squad, err := s.squad(ctx, table, team)
	if err != nil {
		return ReplacementReport{}, err
	}
	if len(squad) == 0 {
		return ReplacementReport{}, fmt.Errorf("%w: %w: team=%s", ErrNotFound, scouting.ErrTeamNotFound, team)
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return ReplacementReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	entries := make([]ReplacementEntry, len(squad))
	var (
		workers  sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for i, member := range squad {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			ranked, err := scouting.FindSimilar(table, scouting.PlayerRef{Name: member.PlayerName, Team: team}, -1, s.cfg.Features)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}

			candidates := make([]scouting.SimilarPlayer, 0, limit)
			for _, c := range ranked {
				if len(candidates) == limit {
					break
				}
				if c.Record.Team == team {
					continue
				}
				candidates = append(candidates, c)
			}
			entries[i] = ReplacementEntry{Player: member, Candidates: candidates}
		}); err != nil {
			workers.Done()
			return ReplacementReport{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return ReplacementReport{}, fmt.Errorf("build replacement report: %w", firstErr)
	}
	s.logger.DebugContext(ctx, "replacement report built", "team", team, "players", len(entries))
	return ReplacementReport{Team: team, Entries: entries}, nil
}

func (s *ScoutService) table(ctx context.Context) ([]player.Record, error) {
	table, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load player table: %w", ErrDependencyUnavailable, err)
	}
	return table, nil
}

// squad uses the repository's team index when it has one.
func (s *ScoutService) squad(ctx context.Context, table []player.Record, team string) ([]player.Record, error) {
	if lister, ok := s.repo.(player.TeamLister); ok {
		squad, err := lister.ListByTeam(ctx, team)
		if err != nil {
			return nil, fmt.Errorf("%w: list team %s: %w", ErrDependencyUnavailable, team, err)
		}
		return squad, nil
	}

	squad := make([]player.Record, 0, 32)
	for _, r := range table {
		if r.Team == team {
			squad = append(squad, r)
		}
	}
	return squad, nil
}

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultResultLimit, nil
	}
	if limit < 0 || limit > MaxResultLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxResultLimit)
	}
	return limit, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
