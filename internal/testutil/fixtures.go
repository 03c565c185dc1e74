package testutil

import (
	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// League returns a league in its final regular-season week.
func League(id, year int) domain.League {
	return domain.League{
		ID:          id,
		Year:        year,
		Name:        "Test League",
		CurrentWeek: 14,
		Settings: domain.Settings{
			RegularSeasonWeekCount:     14,
			PlayoffTeamCount:           6,
			PlayoffMatchupPeriodLength: 1,
			PlayoffSeedTieRule:         "TOTAL_POINTS_SCORED",
			MatchupPeriods:             map[int][]int{14: {14}, 15: {15}},
		},
	}
}

// Teams returns a small standings set, already ordered by standing.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Alpha", Standing: 1, Wins: 11, Losses: 3, FinalStanding: 1, PlayoffPct: 0.5},
		{ID: 2, Name: "Beta", Standing: 2, Wins: 9, Losses: 5, FinalStanding: 2, PlayoffPct: 0.25},
	}
}

// BoxScore returns one regular-season matchup for the given week.
func BoxScore(week int) matchups.BoxScore {
	return matchups.BoxScore{
		Week:        week,
		Home:        matchups.Side{TeamID: 1, Name: "Alpha", Standing: 1},
		Away:        matchups.Side{TeamID: 2, Name: "Beta", Standing: 2},
		HomeScore:   101.5,
		AwayScore:   99.25,
		MatchupType: "NONE",
	}
}
