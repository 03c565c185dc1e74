package config

import (
	"time"

	"github.com/spf13/viper"
)

// ESPNConfig controls how we talk to the ESPN fantasy read API.
type ESPNConfig struct {
	BaseURL string
	ESPNS2  string
	SWID    string
	Timeout time.Duration
}

// Credentialed reports whether both session cookie values are configured.
// Private leagues need the pair; a single value is treated as anonymous.
func (c ESPNConfig) Credentialed() bool {
	return c.ESPNS2 != "" && c.SWID != ""
}

func loadESPN(v *viper.Viper) ESPNConfig {
	return ESPNConfig{
		BaseURL: v.GetString(keyESPNBaseURL),
		ESPNS2:  v.GetString(keyESPNS2),
		SWID:    v.GetString(keySWID),
		Timeout: v.GetDuration(keyESPNTimeout),
	}
}
