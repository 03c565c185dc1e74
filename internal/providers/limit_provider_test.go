package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-playoff-report/internal/teststubs"
)

func TestNewRateLimitedProviderDisabledPassthrough(t *testing.T) {
	stub := &teststubs.StubProvider{}
	if got := NewRateLimitedProvider(stub, 0, 0, nil); got != LeagueProvider(stub) {
		t.Fatal("expected passthrough when rps is non-positive")
	}
}

func TestRateLimitedProviderAllowsBurst(t *testing.T) {
	stub := &teststubs.StubProvider{}
	rp := NewRateLimitedProvider(stub, 100, 3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := rp.FetchLeague(ctx, 100, 2025); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if got := len(stub.RequestsFor("league")); got != 3 {
		t.Fatalf("expected 3 calls through limiter, got %d", got)
	}
}

func TestRateLimitedProviderCancelledContext(t *testing.T) {
	stub := &teststubs.StubProvider{}
	rp := NewRateLimitedProvider(stub, 0.001, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())

	// First call consumes the burst token.
	if _, err := rp.FetchTeams(ctx, 100, 2025); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	cancel()
	_, err := rp.FetchBoxScores(ctx, 100, 2025, 1)
	if err == nil || errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected limiter wait error on canceled context, got %v", err)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	rp := &rateLimitedProvider{}
	if _, err := rp.FetchLeague(context.Background(), 1, 2025); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
