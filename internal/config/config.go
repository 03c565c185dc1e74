package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for one report run.
type Config struct {
	// LeagueIDs may be empty; the driver treats that as missing
	// configuration, not a load error.
	LeagueIDs  []int
	SeasonYear int
	Provider   string
	ESPN       ESPNConfig
	Fetch      FetchConfig
	Metrics    MetricsConfig
}

// Overrides holds command-line flag overrides. Flags beat the settings file
// and environment.
type Overrides struct {
	ConfigFile string
	LeagueIDs  string
	SeasonYear int
	Provider   string
}

// Load resolves configuration from an optional local settings file (.env by
// default, yaml supported via --config), environment variables, and CLI
// overrides, in ascending precedence.
func Load(overrides Overrides) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if overrides.ConfigFile != "" {
		v.SetConfigFile(overrides.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read settings file: %w", err)
		}
	} else {
		// The default settings file is optional; env-only runs are fine.
		v.SetConfigFile(defaultSettingsFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig()
	}

	rawIDs := v.GetString(keyLeagueIDs)
	if overrides.LeagueIDs != "" {
		rawIDs = overrides.LeagueIDs
	}
	leagueIDs, err := parseLeagueIDs(rawIDs)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LeagueIDs:  leagueIDs,
		SeasonYear: v.GetInt(keySeasonYear),
		Provider:   v.GetString(keyProvider),
		ESPN:       loadESPN(v),
		Fetch:      loadFetch(v),
		Metrics:    loadMetrics(v),
	}

	if overrides.SeasonYear > 0 {
		cfg.SeasonYear = overrides.SeasonYear
	}
	if overrides.Provider != "" {
		cfg.Provider = overrides.Provider
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keySeasonYear, defaultSeasonYear)
	v.SetDefault(keyProvider, defaultProvider)
	v.SetDefault(keyESPNTimeout, defaultESPNTimeout)
	v.SetDefault(keyFetchRetries, 0)
	v.SetDefault(keyFetchBackoff, defaultFetchBackoff)
	v.SetDefault(keyFetchRPS, 0.0)
	v.SetDefault(keyFetchBurst, defaultFetchBurst)
	v.SetDefault(keyMetricsEnabled, false)
	v.SetDefault(keyOtelInsecure, true)
	v.SetDefault(keyOtelService, defaultOtelService)
}

func validate(cfg Config) error {
	switch cfg.Provider {
	case ProviderESPN, ProviderFixture:
	default:
		return fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if cfg.SeasonYear <= 0 {
		return fmt.Errorf("invalid season year %d", cfg.SeasonYear)
	}
	if cfg.Fetch.Retries < 0 {
		return fmt.Errorf("fetch retries must be >= 0")
	}
	if cfg.Fetch.RPS < 0 {
		return fmt.Errorf("fetch rps must be >= 0")
	}
	return nil
}
