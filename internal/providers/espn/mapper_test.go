package espn

import "testing"

func TestMapMatchupPeriodsSkipsBadKeys(t *testing.T) {
	got := mapMatchupPeriods(map[string][]int{
		"1":   {1},
		"2":   {2, 3},
		"bad": {9},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(got))
	}
	if len(got[2]) != 2 {
		t.Fatalf("period 2 weeks not preserved: %v", got[2])
	}
	got = mapMatchupPeriods(nil)
	if got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestMapBoxScoresDefaultsMissingTier(t *testing.T) {
	raw := leagueResponse{
		Teams: []teamResponse{{ID: 1, Name: "Alpha", PlayoffSeed: 1}},
		Schedule: []scheduleItem{{
			MatchupPeriodID: 3,
			Home:            scheduleSide{TeamID: 1, TotalPoints: 50},
			Away:            scheduleSide{TeamID: 99, TotalPoints: 40},
		}},
	}

	scores := mapBoxScores(raw, 3)
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	bs := scores[0]
	if bs.Playoff || bs.MatchupType != "NONE" {
		t.Fatalf("missing tier should classify as regular: %+v", bs)
	}
	if bs.Away.Name != "" || bs.Away.TeamID != 99 {
		t.Fatalf("unknown away team should keep id with empty name: %+v", bs.Away)
	}
}

func TestMapBoxScoresFiltersOtherWeeks(t *testing.T) {
	raw := leagueResponse{
		Schedule: []scheduleItem{
			{MatchupPeriodID: 1},
			{MatchupPeriodID: 2},
			{MatchupPeriodID: 2},
		},
	}
	if got := len(mapBoxScores(raw, 2)); got != 2 {
		t.Fatalf("expected 2 scores for week 2, got %d", got)
	}
	if got := mapBoxScores(raw, 9); got != nil {
		t.Fatalf("expected no scores for week 9, got %v", got)
	}
}
