package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/garuda-scout/internal/domain/league"
	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/riskibarqy/garuda-scout/internal/platform/id"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"github.com/riskibarqy/garuda-scout/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

type ScrapeOptions struct {
	// BlockThreshold ends the run after that many ErrSourceBlocked failures
	// in a row. Zero disables the check.
	BlockThreshold int
	Now            func() time.Time
	// RunIDs tags each run for log correlation. Defaults to id.RunGenerator.
	RunIDs id.Generator
}

// ScrapeReport summarizes one run. Failures are counted, never returned.
type ScrapeReport struct {
	RunID         string
	StartedAt     time.Time
	Duration      time.Duration
	Leagues       int
	LeaguesFailed int
	Teams         int
	TeamsFailed   int
	RowsSkipped   int
	Duplicates    int
	Records       int
	Aborted       bool
	AbortReason   string
	Output        player.WriteResult
}

// ScrapeService walks every configured league and team sequentially and
// replaces the player table with what it collected.
type ScrapeService struct {
	source  SquadSource
	writer  player.TableWriter
	targets []league.Target
	opts    ScrapeOptions
	logger  *logging.Logger
}

func NewScrapeService(source SquadSource, writer player.TableWriter, targets []league.Target, opts ScrapeOptions, logger *logging.Logger) *ScrapeService {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RunIDs == nil {
		opts.RunIDs = id.NewRunGenerator(opts.Now)
	}
	return &ScrapeService{
		source:  source,
		writer:  writer,
		targets: append([]league.Target(nil), targets...),
		opts:    opts,
		logger:  logger,
	}
}

func (s *ScrapeService) Run(ctx context.Context) (ScrapeReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScrapeService.Run")
	defer span.End()

	report := ScrapeReport{StartedAt: s.opts.Now()}
	runID, err := s.opts.RunIDs.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate scrape run id failed", "error", err)
	}
	report.RunID = runID
	blocks := resilience.NewFailureLimiter(s.opts.BlockThreshold)
	collected := make([]player.Record, 0, 1024)

	s.logger.InfoContext(ctx, "scrape started", "run_id", runID, "leagues", len(s.targets))

leagues:
	for _, target := range s.targets {
		if err := ctx.Err(); err != nil {
			return s.finish(report), err
		}
		if err := blocks.Allow(); err != nil {
			s.abort(ctx, &report, err)
			break
		}

		report.Leagues++
		teamURLs, err := s.source.TeamURLs(ctx, target.URL)
		s.record(blocks, err)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.finish(report), ctxErr
			}
			report.LeaguesFailed++
			s.logger.WarnContext(ctx, "league listing failed", "league", target.Label, "url", target.URL, "error", err)
			continue
		}
		if len(teamURLs) == 0 {
			s.logger.WarnContext(ctx, "league listing has no teams", "league", target.Label, "url", target.URL)
			continue
		}
		s.logger.InfoContext(ctx, "league listing fetched", "league", target.Label, "teams", len(teamURLs))

		for _, teamURL := range teamURLs {
			if err := ctx.Err(); err != nil {
				return s.finish(report), err
			}
			if err := blocks.Allow(); err != nil {
				s.abort(ctx, &report, err)
				break leagues
			}

			report.Teams++
			page, err := s.source.Squad(ctx, teamURL, target.Label, report.StartedAt)
			s.record(blocks, err)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return s.finish(report), ctxErr
				}
				report.TeamsFailed++
				s.logger.WarnContext(ctx, "team scrape failed", "league", target.Label, "team_url", teamURL, "error", err)
				continue
			}

			for _, failure := range page.Failures {
				s.logger.WarnContext(ctx, "squad row skipped", "team", page.Team, "row", failure.Index, "error", failure.Err)
			}
			report.RowsSkipped += len(page.Failures)
			collected = append(collected, page.Players...)
			s.logger.InfoContext(ctx, "team scraped", "league", target.Label, "team", page.Team, "players", len(page.Players))
		}
	}

	records := DedupeRecords(collected)
	report.Duplicates = len(collected) - len(records)
	report.Records = len(records)
	span.SetAttributes(
		attribute.Int("scrape.records", report.Records),
		attribute.Int("scrape.teams_failed", report.TeamsFailed),
		attribute.Bool("scrape.aborted", report.Aborted),
	)

	if len(records) == 0 {
		report = s.finish(report)
		s.logger.ErrorContext(ctx, "scrape collected no records", "run_id", report.RunID, "leagues", report.Leagues, "teams", report.Teams, "aborted", report.Aborted)
		return report, ErrNoRecordsCollected
	}

	out, err := s.writer.ReplaceAll(ctx, records, report.StartedAt)
	if err != nil {
		return s.finish(report), fmt.Errorf("persist player table: %w", err)
	}
	report.Output = out
	report = s.finish(report)

	s.logger.InfoContext(ctx, "scrape finished",
		"run_id", report.RunID,
		"records", report.Records,
		"duplicates", report.Duplicates,
		"teams", report.Teams,
		"teams_failed", report.TeamsFailed,
		"rows_skipped", report.RowsSkipped,
		"aborted", report.Aborted,
		"duration", report.Duration,
	)
	return report, nil
}

func (s *ScrapeService) record(blocks *resilience.FailureLimiter, err error) {
	if err != nil && crerr.Is(err, ErrSourceBlocked) {
		blocks.RecordFailure()
		return
	}
	blocks.RecordSuccess()
}

func (s *ScrapeService) abort(ctx context.Context, report *ScrapeReport, err error) {
	report.Aborted = true
	report.AbortReason = err.Error()
	if errors.Is(err, resilience.ErrFailureLimit) {
		report.AbortReason = "source is blocking requests"
	}
	s.logger.ErrorContext(ctx, "scrape aborted", "reason", report.AbortReason, "error", err)
}

func (s *ScrapeService) finish(report ScrapeReport) ScrapeReport {
	report.Duration = s.opts.Now().Sub(report.StartedAt)
	return report
}

// DedupeRecords keeps the first occurrence of every (name, team) pair in order.
func DedupeRecords(records []player.Record) []player.Record {
	seen := make(map[player.Key]struct{}, len(records))
	out := make([]player.Record, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
