package fixture

import (
	"context"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// Name labels this provider in logs and metrics.
const Name = "fixture"

const regularSeasonWeeks = 14

// Provider returns a static league useful for local runs without network
// access. The requested league ID and year are echoed back so multi-league
// configurations still produce distinct sections.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLeague returns a deterministic league in its first playoff week.
func (p *Provider) FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error) {
	_ = ctx
	return domain.League{
		ID:          leagueID,
		Year:        year,
		Name:        "Fixture League",
		CurrentWeek: regularSeasonWeeks + 1,
		Settings: domain.Settings{
			RegularSeasonWeekCount:     regularSeasonWeeks,
			PlayoffTeamCount:           4,
			PlayoffMatchupPeriodLength: 1,
			PlayoffSeedTieRule:         "TOTAL_POINTS_SCORED",
			MatchupPeriods: map[int][]int{
				13: {13},
				14: {14},
				15: {15},
				16: {16},
				17: {17},
			},
		},
	}, nil
}

// FetchTeams returns a deterministic set of teams, unsorted on purpose so the
// driver's standing sort is observable.
func (p *Provider) FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error) {
	_ = ctx
	_ = leagueID
	_ = year
	return []teams.Team{
		{ID: 3, Name: "Mallard Mafia", Abbrev: "MAL", Standing: 3, Wins: 8, Losses: 6, FinalStanding: 4, PlayoffPct: 0.5},
		{ID: 1, Name: "Gridiron Gurus", Abbrev: "GG", Standing: 1, Wins: 12, Losses: 2, FinalStanding: 1, PlayoffPct: 1},
		{ID: 4, Name: "Waiver Wire Warriors", Abbrev: "WWW", Standing: 4, Wins: 7, Losses: 7, FinalStanding: 3, PlayoffPct: 0.125},
		{ID: 2, Name: "Bench Warmers", Abbrev: "BW", Standing: 2, Wins: 10, Losses: 4, FinalStanding: 2, PlayoffPct: 0.875},
	}, nil
}

// FetchBoxScores returns two deterministic semifinal matchups for any week.
func (p *Provider) FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error) {
	_ = ctx
	_ = leagueID
	_ = year
	playoff := week > regularSeasonWeeks
	tier := "NONE"
	if playoff {
		tier = "WINNERS_BRACKET"
	}
	return []matchups.BoxScore{
		{
			Week:        week,
			Home:        matchups.Side{TeamID: 1, Name: "Gridiron Gurus", Standing: 1},
			Away:        matchups.Side{TeamID: 4, Name: "Waiver Wire Warriors", Standing: 4},
			HomeScore:   112.35,
			AwayScore:   84.6,
			Playoff:     playoff,
			MatchupType: tier,
		},
		{
			Week:        week,
			Home:        matchups.Side{TeamID: 2, Name: "Bench Warmers", Standing: 2},
			Away:        matchups.Side{TeamID: 3, Name: "Mallard Mafia", Standing: 3},
			HomeScore:   97.8,
			AwayScore:   101.15,
			Playoff:     playoff,
			MatchupType: tier,
		},
	}, nil
}
