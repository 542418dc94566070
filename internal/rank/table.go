// Package rank derives a display rank from cumulative XP via a fixed ladder
// of thresholds. Everything here is pure; UI progress bars call it on every
// render without touching state.
package rank

// Threshold is one rung of the ladder: a rank name and the minimum
// cumulative XP required to hold it.
type Threshold struct {
	Name  string
	MinXP float64
}

// thresholds is ordered by strictly increasing MinXP.
var thresholds = []Threshold{
	{Name: "Estudante da Academia", MinXP: 0},
	{Name: "Genin", MinXP: 100},
	{Name: "Chunin", MinXP: 500},
	{Name: "Tokubetsu Jonin", MinXP: 1200},
	{Name: "Jonin", MinXP: 2500},
	{Name: "ANBU", MinXP: 3000},
	{Name: "Sannin", MinXP: 5000},
	{Name: "Kage", MinXP: 8000},
}

// TerminalRankName is the synthetic rank reported as "next" once a user
// holds the top of the ladder. It has no real threshold.
const TerminalRankName = "Lenda"

// Standing describes where a cumulative XP total sits on the ladder.
type Standing struct {
	Rank          string
	NextRankName  string
	MinXP         float64
	NextRankMinXP float64
}

// For returns the standing for a cumulative XP total. The current rank is
// the highest threshold at or below totalXP. Past the top rung the next rank
// is TerminalRankName and NextRankMinXP is totalXP*2 — a pseudo-cap that
// exists only so progress bars have something to render against.
func For(totalXP float64) Standing {
	current := thresholds[0]
	var next *Threshold

	for i := range thresholds {
		if totalXP < thresholds[i].MinXP {
			break
		}
		current = thresholds[i]
		if i+1 < len(thresholds) {
			next = &thresholds[i+1]
		} else {
			next = nil
		}
	}

	standing := Standing{Rank: current.Name, MinXP: current.MinXP}
	if next != nil {
		standing.NextRankName = next.Name
		standing.NextRankMinXP = next.MinXP
	} else {
		standing.NextRankName = TerminalRankName
		standing.NextRankMinXP = totalXP * 2
	}
	return standing
}

// Initial returns the rank every new user starts with.
func Initial() string {
	return thresholds[0].Name
}

// Thresholds returns a copy of the ladder for display purposes.
func Thresholds() []Threshold {
	out := make([]Threshold, len(thresholds))
	copy(out, thresholds)
	return out
}
