package config

import "time"

// Settings keys. Each key maps 1:1 to its uppercased environment variable
// (LEAGUE_IDS, ESPN_S2, ...) and to the same key in an optional settings file.
const (
	keyLeagueIDs  = "league_ids"
	keySeasonYear = "season_year"
	keyProvider   = "provider"

	keyESPNS2      = "espn_s2"
	keySWID        = "swid"
	keyESPNBaseURL = "espn_base_url"
	keyESPNTimeout = "espn_timeout"

	keyFetchRetries = "fetch_retries"
	keyFetchBackoff = "fetch_backoff"
	keyFetchRPS     = "fetch_rps"
	keyFetchBurst   = "fetch_burst"

	keyMetricsEnabled = "metrics_enabled"
	keyOtelEndpoint   = "otel_exporter_otlp_endpoint"
	keyOtelInsecure   = "otel_exporter_otlp_insecure"
	keyOtelService    = "otel_service_name"
	keyPushURL        = "pushgateway_url"
	keyPushJob        = "pushgateway_job"
)

// ProviderESPN and ProviderFixture are the recognized provider selections.
const (
	ProviderESPN    = "espn"
	ProviderFixture = "fixture"
)

const (
	defaultSettingsFile = ".env"
	// Season the tool reports on unless overridden.
	defaultSeasonYear   = 2025
	defaultProvider     = ProviderESPN
	defaultESPNTimeout  = 15 * time.Second
	defaultFetchBackoff = 200 * time.Millisecond
	defaultFetchBurst   = 1
	defaultOtelService  = "playoff-report"
)
