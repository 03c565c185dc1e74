package leagues

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
	"fantasy-playoff-report/internal/logging"
	"fantasy-playoff-report/internal/metrics"
	"fantasy-playoff-report/internal/providers"
)

// Report is one league's assembled playoff report. BoxScoreErr carries a
// caught box-score fetch failure; the rest of the report is still valid.
type Report struct {
	League      domain.League
	Week        int
	BoxScores   []matchups.BoxScore
	BoxScoreErr error
	Teams       []teams.Team
}

// Renderer consumes assembled reports as they are produced, so output for a
// league appears before later leagues are fetched.
type Renderer interface {
	Render(rep Report)
}

// Service drives the report: it pulls league data through a provider and
// hands each assembled report to a renderer.
type Service struct {
	provider providers.LeagueProvider
	logger   *slog.Logger
	rec      *metrics.Recorder
}

// NewService constructs a Service over the given provider.
func NewService(provider providers.LeagueProvider, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, logger: logger, rec: rec}
}

// Run assembles and renders one report per league ID, in order. A box-score
// fetch failure is recorded on that league's report and does not stop the
// run; any other fetch failure aborts the remaining leagues.
func (s *Service) Run(ctx context.Context, leagueIDs []int, year, weekOverride int, out Renderer) error {
	for _, id := range leagueIDs {
		rep, err := s.build(ctx, id, year, weekOverride)
		if err != nil {
			return err
		}
		if out != nil {
			out.Render(rep)
		}
	}
	return nil
}

func (s *Service) build(ctx context.Context, leagueID, year, weekOverride int) (Report, error) {
	start := time.Now()

	lg, err := s.provider.FetchLeague(ctx, leagueID, year)
	if err != nil {
		return Report{}, fmt.Errorf("league %d: fetch settings: %w", leagueID, err)
	}

	week := lg.CurrentWeek
	if weekOverride > 0 {
		week = weekOverride
	}

	rep := Report{League: lg, Week: week}

	scores, err := s.provider.FetchBoxScores(ctx, leagueID, year, week)
	if err != nil {
		rep.BoxScoreErr = err
		logging.Warn(s.logger, "box score fetch failed",
			logging.FieldLeagueID, leagueID, logging.FieldWeek, week, "error", err)
	} else {
		rep.BoxScores = scores
	}

	items, err := s.provider.FetchTeams(ctx, leagueID, year)
	if err != nil {
		return Report{}, fmt.Errorf("league %d: fetch teams: %w", leagueID, err)
	}
	teams.SortByStanding(items)
	rep.Teams = items

	s.rec.RecordLeagueReport(time.Since(start), rep.BoxScoreErr)
	logging.Info(s.logger, "league report assembled",
		logging.FieldLeagueID, leagueID, logging.FieldYear, year, logging.FieldWeek, week,
		logging.FieldCount, len(rep.Teams), logging.FieldDurationMS, time.Since(start).Milliseconds())

	return rep, nil
}
