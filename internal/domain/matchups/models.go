package matchups

// Side identifies one team's side of a matchup.
type Side struct {
	TeamID   int
	Name     string
	Standing int
}

// BoxScore is a single matchup result for one week.
type BoxScore struct {
	Week        int
	Home        Side
	Away        Side
	HomeScore   float64
	AwayScore   float64
	Playoff     bool
	MatchupType string
}
