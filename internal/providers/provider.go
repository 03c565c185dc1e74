package providers

import (
	"context"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// LeagueSettingsProvider fetches a league's normalized settings and status.
type LeagueSettingsProvider interface {
	FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error)
}

// TeamProvider fetches a league's teams with their pre-computed standings.
type TeamProvider interface {
	FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error)
}

// BoxScoreProvider fetches one week's box scores for a league.
type BoxScoreProvider interface {
	FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error)
}

// LeagueProvider combines all provider capabilities.
type LeagueProvider interface {
	LeagueSettingsProvider
	TeamProvider
	BoxScoreProvider
}
