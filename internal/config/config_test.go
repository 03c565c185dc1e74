package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "100,200")
	t.Setenv("SEASON_YEAR", "2025")
	t.Setenv("ESPN_S2", "token")
	t.Setenv("SWID", "{ABC}")

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LeagueIDs) != 2 || cfg.LeagueIDs[0] != 100 || cfg.LeagueIDs[1] != 200 {
		t.Fatalf("unexpected league ids %v", cfg.LeagueIDs)
	}
	if cfg.SeasonYear != 2025 {
		t.Fatalf("unexpected season year %d", cfg.SeasonYear)
	}
	if !cfg.ESPN.Credentialed() {
		t.Fatal("expected credentialed config with both cookies set")
	}
	if cfg.Provider != ProviderESPN {
		t.Fatalf("unexpected default provider %q", cfg.Provider)
	}
}

func TestLoadMissingLeagueIDsIsNotAnError(t *testing.T) {
	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LeagueIDs) != 0 {
		t.Fatalf("expected no league ids, got %v", cfg.LeagueIDs)
	}
}

func TestLoadMalformedLeagueIDIsFatal(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "100,abc")

	if _, err := Load(Overrides{}); err == nil {
		t.Fatal("expected error for malformed league id")
	}
}

func TestSingleCredentialIsAnonymous(t *testing.T) {
	t.Setenv("ESPN_S2", "token")

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ESPN.Credentialed() {
		t.Fatal("single credential must not count as credentialed")
	}
}

func TestOverridesBeatEnvironment(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "100")
	t.Setenv("SEASON_YEAR", "2024")
	t.Setenv("PROVIDER", "espn")

	cfg, err := Load(Overrides{LeagueIDs: "300,400", SeasonYear: 2025, Provider: ProviderFixture})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LeagueIDs) != 2 || cfg.LeagueIDs[0] != 300 {
		t.Fatalf("flag league ids not applied: %v", cfg.LeagueIDs)
	}
	if cfg.SeasonYear != 2025 {
		t.Fatalf("flag season year not applied: %d", cfg.SeasonYear)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("flag provider not applied: %q", cfg.Provider)
	}
}

func TestLoadFromSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.env")
	content := strings.Join([]string{
		"LEAGUE_IDS=123",
		"SEASON_YEAR=2023",
		"FETCH_RETRIES=2",
		"ESPN_TIMEOUT=5s",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	cfg, err := Load(Overrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LeagueIDs) != 1 || cfg.LeagueIDs[0] != 123 {
		t.Fatalf("unexpected league ids %v", cfg.LeagueIDs)
	}
	if cfg.SeasonYear != 2023 {
		t.Fatalf("unexpected season year %d", cfg.SeasonYear)
	}
	if cfg.Fetch.Retries != 2 {
		t.Fatalf("unexpected retries %d", cfg.Fetch.Retries)
	}
	if cfg.ESPN.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.ESPN.Timeout)
	}
}

func TestLoadMissingExplicitSettingsFileIsFatal(t *testing.T) {
	if _, err := Load(Overrides{ConfigFile: filepath.Join(t.TempDir(), "absent.env")}); err == nil {
		t.Fatal("expected error for missing explicit settings file")
	}
}

func TestUnknownProviderRejected(t *testing.T) {
	t.Setenv("PROVIDER", "yahoo")

	if _, err := Load(Overrides{}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestFetchDefaultsKeepSingleAttempt(t *testing.T) {
	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fetch.Retries != 0 {
		t.Fatalf("default retries should be 0, got %d", cfg.Fetch.Retries)
	}
	if cfg.Fetch.RPS != 0 {
		t.Fatalf("default rps should be 0, got %v", cfg.Fetch.RPS)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics should default off")
	}
}
