package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// rateLimitedProvider wraps a LeagueProvider with a client-side token bucket
// so a run over many leagues stays under upstream quotas.
type rateLimitedProvider struct {
	next    LeagueProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a LeagueProvider limited to rps requests per
// second with the given burst. A non-positive rps disables limiting and
// returns next unchanged.
func NewRateLimitedProvider(next LeagueProvider, rps float64, burst int, logger *slog.Logger) LeagueProvider {
	if rps <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error) {
	if err := p.wait(ctx); err != nil {
		return domain.League{}, err
	}
	return p.next.FetchLeague(ctx, leagueID, year)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx, leagueID, year)
}

func (p *rateLimitedProvider) FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchBoxScores(ctx, leagueID, year, week)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "limiter wait canceled", "err", err)
		return err
	}
	return nil
}
