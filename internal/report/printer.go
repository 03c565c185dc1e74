package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"fantasy-playoff-report/internal/app/leagues"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
)

// Printer renders assembled league reports as human-readable text.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Render writes one league's section. It implements leagues.Renderer.
func (p *Printer) Render(rep leagues.Report) {
	lg := rep.League
	s := lg.Settings

	fmt.Fprintf(p.w, "League: %s (id=%d year=%d)\n", lg.Name, lg.ID, lg.Year)
	fmt.Fprintf(p.w, "Current week: %d\n", lg.CurrentWeek)
	fmt.Fprintf(p.w, "Regular season weeks: %d\n", s.RegularSeasonWeekCount)
	fmt.Fprintf(p.w, "Playoff teams: %d\n", s.PlayoffTeamCount)
	fmt.Fprintf(p.w, "Playoff matchup period length: %d\n", s.PlayoffMatchupPeriodLength)
	fmt.Fprintf(p.w, "Playoff seed tie rule: %s\n", s.PlayoffSeedTieRule)
	fmt.Fprintf(p.w, "In playoffs: %t\n", lg.InPlayoffs())

	fmt.Fprintf(p.w, "Box scores (week %d):\n", rep.Week)
	switch {
	case rep.BoxScoreErr != nil:
		fmt.Fprintf(p.w, "  error fetching box scores: %v\n", rep.BoxScoreErr)
	case len(rep.BoxScores) == 0:
		fmt.Fprintln(p.w, "  none")
	default:
		for _, bs := range rep.BoxScores {
			p.renderBoxScore(bs)
		}
	}

	fmt.Fprintln(p.w, "Standings:")
	for i, t := range rep.Teams {
		fmt.Fprintf(p.w, "  %2d. %s (%s) final=%d playoff%%=%.3f\n",
			i+1, t.Name, record(t), t.FinalStanding, t.PlayoffPct)
	}

	fmt.Fprintf(p.w, "Matchup periods: %s\n", formatMatchupPeriods(s.MatchupPeriods))
	fmt.Fprintln(p.w)
}

func (p *Printer) renderBoxScore(bs matchups.BoxScore) {
	fmt.Fprintf(p.w, "  [%s] %s: %s (seed %d) %.2f - %.2f %s (seed %d)\n",
		playoffTag(bs), bs.MatchupType,
		bs.Home.Name, bs.Home.Standing, bs.HomeScore,
		bs.AwayScore, bs.Away.Name, bs.Away.Standing)
}

func playoffTag(bs matchups.BoxScore) string {
	if bs.Playoff {
		return "PLAYOFF"
	}
	return "REGULAR"
}

func record(t teams.Team) string {
	if t.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	}
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// formatMatchupPeriods renders the period structure the way %v would, but
// with periods in numeric order so output is deterministic.
func formatMatchupPeriods(periods map[int][]int) string {
	if len(periods) == 0 {
		return "map[]"
	}

	keys := make([]int, 0, len(periods))
	for k := range periods {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var b strings.Builder
	b.WriteString("map[")
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%v", k, periods[k])
	}
	b.WriteByte(']')
	return b.String()
}
