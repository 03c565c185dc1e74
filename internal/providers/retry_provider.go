package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
	"fantasy-playoff-report/internal/metrics"
)

const (
	defaultRetryAttempts  = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a LeagueProvider with retry/backoff behavior.
// Upstream Retry-After hints take precedence over the computed backoff.
type retryingProvider struct {
	inner        LeagueProvider
	logger       *slog.Logger
	rec          *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackoff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// maxAttempts/initial fall back to defaults.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, initial time.Duration) LeagueProvider {
	if name == "" {
		name = "provider"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		rec:          rec,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackoff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = initial
			bo.MaxElapsedTime = 0
			return bo
		},
	}
}

func (r *retryingProvider) FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error) {
	var out domain.League
	err := r.do(ctx, "settings", func() error {
		var err error
		out, err = r.inner.FetchLeague(ctx, leagueID, year)
		return err
	})
	return out, err
}

func (r *retryingProvider) FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error) {
	var out []teams.Team
	err := r.do(ctx, "teams", func() error {
		var err error
		out, err = r.inner.FetchTeams(ctx, leagueID, year)
		return err
	})
	return out, err
}

func (r *retryingProvider) FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error) {
	var out []matchups.BoxScore
	err := r.do(ctx, "box_scores", func() error {
		var err error
		out, err = r.inner.FetchBoxScores(ctx, leagueID, year, week)
		return err
	})
	return out, err
}

func (r *retryingProvider) do(ctx context.Context, op string, fn func() error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}

	bo := r.newBackoff()
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fn()
		r.rec.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		rlErr, rateLimited := AsRateLimitError(err)
		if rateLimited {
			r.rec.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			break
		}
		if rateLimited && rlErr.RetryAfter > 0 {
			delay = rlErr.RetryAfter
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "delay", delay.String(), "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
		"op", op, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}
