package config

import (
	"time"

	"github.com/spf13/viper"
)

// FetchConfig tunes the provider decorators. The defaults keep the report's
// plain behavior: a single attempt per fetch and no client-side throttling.
type FetchConfig struct {
	Retries int
	Backoff time.Duration
	RPS     float64
	Burst   int
}

func loadFetch(v *viper.Viper) FetchConfig {
	return FetchConfig{
		Retries: v.GetInt(keyFetchRetries),
		Backoff: v.GetDuration(keyFetchBackoff),
		RPS:     v.GetFloat64(keyFetchRPS),
		Burst:   v.GetInt(keyFetchBurst),
	}
}
