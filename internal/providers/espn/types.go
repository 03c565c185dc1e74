package espn

// Wire types for the fantasy v3 league resource. Only the fields the report
// reads are decoded.

type leagueResponse struct {
	ID       int              `json:"id"`
	SeasonID int              `json:"seasonId"`
	Status   statusResponse   `json:"status"`
	Settings settingsResponse `json:"settings"`
	Teams    []teamResponse   `json:"teams"`
	Schedule []scheduleItem   `json:"schedule"`
}

type statusResponse struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	LatestScoringPeriod  int  `json:"latestScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type settingsResponse struct {
	Name             string           `json:"name"`
	ScheduleSettings scheduleSettings `json:"scheduleSettings"`
}

type scheduleSettings struct {
	MatchupPeriodCount         int              `json:"matchupPeriodCount"`
	MatchupPeriods             map[string][]int `json:"matchupPeriods"`
	PlayoffMatchupPeriodLength int              `json:"playoffMatchupPeriodLength"`
	PlayoffTeamCount           int              `json:"playoffTeamCount"`
	PlayoffSeedingRule         string           `json:"playoffSeedingRule"`
}

type teamResponse struct {
	ID                       int               `json:"id"`
	Name                     string            `json:"name"`
	Abbrev                   string            `json:"abbrev"`
	PlayoffSeed              int               `json:"playoffSeed"`
	RankCalculatedFinal      int               `json:"rankCalculatedFinal"`
	Record                   recordResponse    `json:"record"`
	CurrentSimulationResults simulationResults `json:"currentSimulationResults"`
}

type recordResponse struct {
	Overall overallRecord `json:"overall"`
}

type overallRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

type simulationResults struct {
	PlayoffPct float64 `json:"playoffPct"`
}

type scheduleItem struct {
	MatchupPeriodID int          `json:"matchupPeriodId"`
	PlayoffTierType string       `json:"playoffTierType"`
	Home            scheduleSide `json:"home"`
	Away            scheduleSide `json:"away"`
}

type scheduleSide struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}
