package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunWithoutLeagueIDsPrintsMissingConfig(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "")

	var out bytes.Buffer
	code := run(nil, &out)

	if code != 0 {
		t.Fatalf("missing configuration should exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), missingConfigMessage) {
		t.Fatalf("missing configuration message not printed:\n%s", out.String())
	}
	if strings.Contains(out.String(), "League:") {
		t.Fatal("no report should be produced without league ids")
	}
}

func TestRunMalformedLeagueIDsFails(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "100,abc")

	var out bytes.Buffer
	if code := run(nil, &out); code != 1 {
		t.Fatalf("malformed league ids should exit 1, got %d", code)
	}
}

func TestRunFixtureProviderEndToEnd(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "")

	var out bytes.Buffer
	code := run([]string{"--provider", "fixture", "--leagues", "42,43", "--year", "2025"}, &out)

	if code != 0 {
		t.Fatalf("fixture run should succeed, got exit %d", code)
	}

	text := out.String()
	if got := strings.Count(text, "League: Fixture League"); got != 2 {
		t.Fatalf("expected 2 league sections, got %d:\n%s", got, text)
	}
	for _, want := range []string{
		"(id=42 year=2025)",
		"(id=43 year=2025)",
		"In playoffs: true",
		"playoff%=1.000",
		"[PLAYOFF] WINNERS_BRACKET:",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}

	// Standings are ordered by standing even though the fixture returns them shuffled.
	if gurus := strings.Index(text, "Gridiron Gurus"); gurus == -1 || gurus > strings.Index(text, "Bench Warmers") {
		t.Fatalf("standings not sorted by standing:\n%s", text)
	}
}

func TestRunUnknownFlagExitsUsage(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"--bogus"}, &out); code != 2 {
		t.Fatalf("expected usage exit code 2, got %d", code)
	}
}
