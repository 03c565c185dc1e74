package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderProviderAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("espn", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn", 20*time.Millisecond, errors.New("boom"))

	snap := rec.ProviderSnapshot("espn")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("expected last latency 20ms, got %s", snap.LastCallLatency)
	}
}

func TestRecorderRateLimit(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRateLimit("espn", 3*time.Second)
	rec.RecordRateLimit("espn", 0)

	if got := rec.RateLimitHits("espn"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.ProviderSnapshot("espn").LastRetryAfter; got != 3*time.Second {
		t.Fatalf("expected retry-after 3s, got %s", got)
	}
}

func TestRecorderLeagueReports(t *testing.T) {
	rec := NewRecorder()

	rec.RecordLeagueReport(time.Millisecond, nil)
	rec.RecordLeagueReport(time.Millisecond, errors.New("box scores failed"))

	total, withErrors := rec.LeagueReports()
	if total != 2 || withErrors != 1 {
		t.Fatalf("expected 2 reports / 1 with errors, got %d / %d", total, withErrors)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordRateLimit("espn", time.Second)
	rec.RecordLeagueReport(time.Millisecond, nil)
	if rec.ProviderCalls("espn") != 0 {
		t.Fatal("nil recorder should report zero calls")
	}
}

func TestUnknownProviderSnapshotIsZero(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.ProviderSnapshot("nope"); snap != (ProviderSnapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
