package espn

import (
	"strconv"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

func mapLeague(raw leagueResponse, leagueID, year int) domain.League {
	ss := raw.Settings.ScheduleSettings
	return domain.League{
		ID:          leagueID,
		Year:        year,
		Name:        raw.Settings.Name,
		CurrentWeek: raw.Status.CurrentMatchupPeriod,
		Settings: domain.Settings{
			RegularSeasonWeekCount:     regularSeasonWeeks(ss),
			PlayoffTeamCount:           ss.PlayoffTeamCount,
			PlayoffMatchupPeriodLength: ss.PlayoffMatchupPeriodLength,
			PlayoffSeedTieRule:         ss.PlayoffSeedingRule,
			MatchupPeriods:             mapMatchupPeriods(ss.MatchupPeriods),
		},
	}
}

// regularSeasonWeeks derives the regular-season length: the matchup period
// count covers regular season only, with playoff periods listed separately in
// MatchupPeriods.
func regularSeasonWeeks(ss scheduleSettings) int {
	return ss.MatchupPeriodCount
}

func mapMatchupPeriods(raw map[string][]int) map[int][]int {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[int][]int, len(raw))
	for key, weeks := range raw {
		period, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[period] = weeks
	}
	return out
}

func mapTeams(raw leagueResponse) []teams.Team {
	out := make([]teams.Team, 0, len(raw.Teams))
	for _, t := range raw.Teams {
		out = append(out, teams.Team{
			ID:            t.ID,
			Name:          t.Name,
			Abbrev:        t.Abbrev,
			Standing:      t.PlayoffSeed,
			Wins:          t.Record.Overall.Wins,
			Losses:        t.Record.Overall.Losses,
			Ties:          t.Record.Overall.Ties,
			FinalStanding: t.RankCalculatedFinal,
			PlayoffPct:    t.CurrentSimulationResults.PlayoffPct,
		})
	}
	return out
}

// mapBoxScores filters the season schedule down to the requested week and
// joins team names/seeds through the teams section of the same response.
func mapBoxScores(raw leagueResponse, week int) []matchups.BoxScore {
	index := make(map[int]teamResponse, len(raw.Teams))
	for _, t := range raw.Teams {
		index[t.ID] = t
	}

	var out []matchups.BoxScore
	for _, item := range raw.Schedule {
		if item.MatchupPeriodID != week {
			continue
		}
		tier := item.PlayoffTierType
		if tier == "" {
			tier = tierNone
		}
		out = append(out, matchups.BoxScore{
			Week:        week,
			Home:        mapSide(item.Home, index),
			Away:        mapSide(item.Away, index),
			HomeScore:   item.Home.TotalPoints,
			AwayScore:   item.Away.TotalPoints,
			Playoff:     tier != tierNone,
			MatchupType: tier,
		})
	}
	return out
}

func mapSide(side scheduleSide, index map[int]teamResponse) matchups.Side {
	t := index[side.TeamID]
	return matchups.Side{
		TeamID:   side.TeamID,
		Name:     t.Name,
		Standing: t.PlayoffSeed,
	}
}
