package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings. Both paths push: OTLP
// while the run lasts, Pushgateway at shutdown.
type MetricsConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
	PushURL      string
	JobName      string
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      v.GetBool(keyMetricsEnabled),
		ServiceName:  v.GetString(keyOtelService),
		OtlpEndpoint: v.GetString(keyOtelEndpoint),
		OtlpInsecure: v.GetBool(keyOtelInsecure),
		PushURL:      v.GetString(keyPushURL),
		JobName:      v.GetString(keyPushJob),
	}
}
