package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"

	"fantasy-playoff-report/internal/app/leagues"
	"fantasy-playoff-report/internal/config"
	"fantasy-playoff-report/internal/logging"
	"fantasy-playoff-report/internal/metrics"
	"fantasy-playoff-report/internal/providers"
	"fantasy-playoff-report/internal/providers/espn"
	"fantasy-playoff-report/internal/providers/fixture"
	"fantasy-playoff-report/internal/report"
)

const appVersion = "dev"

const missingConfigMessage = "no league ids configured; set LEAGUE_IDS to a comma-separated list of league ids"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	app := kingpin.New("playoff-report", "Prints playoff scheduling, seeding, and standings for configured fantasy leagues")
	configFile := app.Flag("config", "Path to settings file (.env or yaml)").String()
	leagueIDs := app.Flag("leagues", "Comma-separated league IDs (overrides LEAGUE_IDS)").String()
	seasonYear := app.Flag("year", "Season year (overrides SEASON_YEAR)").Int()
	week := app.Flag("week", "Week to report box scores for (defaults to each league's current week)").Int()
	providerName := app.Flag("provider", "Data provider: espn or fixture (overrides PROVIDER)").String()

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.Load(config.Overrides{
		ConfigFile: *configFile,
		LeagueIDs:  *leagueIDs,
		SeasonYear: *seasonYear,
		Provider:   *providerName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "playoff-report",
		Version: appVersion,
		RunID:   uuid.NewString(),
	})

	if len(cfg.LeagueIDs) == 0 {
		fmt.Fprintln(out, missingConfigMessage)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
		PushURL:      cfg.Metrics.PushURL,
		JobName:      cfg.Metrics.JobName,
	})
	if err != nil {
		logging.Error(logger, "telemetry setup failed", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(flushCtx); err != nil {
			logging.Warn(logger, "telemetry flush failed", "error", err)
		}
	}()

	provider := buildProvider(cfg, logger, rec)
	svc := leagues.NewService(provider, logger, rec)
	printer := report.NewPrinter(out)

	if err := svc.Run(ctx, cfg.LeagueIDs, cfg.SeasonYear, *week, printer); err != nil {
		logging.Error(logger, "report failed", err)
		return 1
	}

	snap := rec.ProviderSnapshot(cfg.Provider)
	logging.Info(logger, "report complete",
		logging.FieldProvider, cfg.Provider,
		logging.FieldCount, len(cfg.LeagueIDs),
		"provider_calls", snap.Calls,
		"provider_errors", snap.Errors)
	return 0
}

// buildProvider assembles the provider stack: base client wrapped by the
// retry and rate-limit decorators.
func buildProvider(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder) providers.LeagueProvider {
	var base providers.LeagueProvider
	switch cfg.Provider {
	case config.ProviderFixture:
		base = fixture.New()
	default:
		base = espn.NewClient(espn.Config{
			BaseURL: cfg.ESPN.BaseURL,
			ESPNS2:  cfg.ESPN.ESPNS2,
			SWID:    cfg.ESPN.SWID,
			Timeout: cfg.ESPN.Timeout,
		})
	}

	// FETCH_RETRIES counts attempts beyond the first, so the default of zero
	// keeps single-attempt fetches while still recording attempt metrics.
	base = providers.NewRetryingProvider(base, logger, rec, cfg.Provider, cfg.Fetch.Retries+1, cfg.Fetch.Backoff)
	base = providers.NewRateLimitedProvider(base, cfg.Fetch.RPS, cfg.Fetch.Burst, logger)
	return base
}
