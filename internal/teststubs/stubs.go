package teststubs

import (
	"context"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// Request records one provider call for assertion in tests.
type Request struct {
	Op       string
	LeagueID int
	Year     int
	Week     int
}

// StubProvider is a test double for providers.LeagueProvider. Zero-value maps
// fall back to synthesized results keyed by the requested league ID.
type StubProvider struct {
	LeaguesByID map[int]domain.League
	TeamsByID   map[int][]teams.Team
	ScoresByID  map[int][]matchups.BoxScore

	LeagueErr     error
	TeamsErr      error
	TeamsErrByID  map[int]error
	ScoresErrByID map[int]error

	Requests []Request
}

// FetchLeague returns the configured league (or a synthesized one) while tracking the call.
func (s *StubProvider) FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error) {
	_ = ctx
	s.Requests = append(s.Requests, Request{Op: "league", LeagueID: leagueID, Year: year})
	if s.LeagueErr != nil {
		return domain.League{}, s.LeagueErr
	}
	if lg, ok := s.LeaguesByID[leagueID]; ok {
		return lg, nil
	}
	return domain.League{ID: leagueID, Year: year, Name: "stub league", CurrentWeek: 1,
		Settings: domain.Settings{RegularSeasonWeekCount: 14}}, nil
}

// FetchTeams returns the configured teams while tracking the call.
func (s *StubProvider) FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error) {
	_ = ctx
	s.Requests = append(s.Requests, Request{Op: "teams", LeagueID: leagueID, Year: year})
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	if err, ok := s.TeamsErrByID[leagueID]; ok && err != nil {
		return nil, err
	}
	return s.TeamsByID[leagueID], nil
}

// FetchBoxScores returns the configured box scores while tracking the call.
func (s *StubProvider) FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error) {
	_ = ctx
	s.Requests = append(s.Requests, Request{Op: "box_scores", LeagueID: leagueID, Year: year, Week: week})
	if err, ok := s.ScoresErrByID[leagueID]; ok && err != nil {
		return nil, err
	}
	return s.ScoresByID[leagueID], nil
}

// RequestsFor filters recorded requests by operation, preserving order.
func (s *StubProvider) RequestsFor(op string) []Request {
	var out []Request
	for _, r := range s.Requests {
		if r.Op == op {
			out = append(out, r)
		}
	}
	return out
}
