package domain

// League is the normalized league shape produced by providers.
type League struct {
	ID          int
	Year        int
	Name        string
	CurrentWeek int
	Settings    Settings
}

// Settings carries the playoff-relevant scheduling settings for a league.
type Settings struct {
	RegularSeasonWeekCount     int
	PlayoffTeamCount           int
	PlayoffMatchupPeriodLength int
	PlayoffSeedTieRule         string
	// MatchupPeriods maps each matchup period to the scoring weeks it spans.
	MatchupPeriods map[int][]int
}

// InPlayoffs reports whether the current week is past the regular season.
// A current week equal to the regular-season length is still regular season.
func (l League) InPlayoffs() bool {
	return l.CurrentWeek > l.Settings.RegularSeasonWeekCount
}
