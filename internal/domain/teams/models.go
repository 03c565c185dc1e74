package teams

import "sort"

// Team is the normalized team shape for standings output.
// Standing is the team's current playoff seed as computed upstream; the tool
// never re-ranks, it only orders by this field.
type Team struct {
	ID            int
	Name          string
	Abbrev        string
	Standing      int
	Wins          int
	Losses        int
	Ties          int
	FinalStanding int
	PlayoffPct    float64
}

// SortByStanding orders teams ascending by their pre-supplied standing.
// The sort is stable so ties keep the upstream order.
func SortByStanding(items []Team) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Standing < items[j].Standing
	})
}
