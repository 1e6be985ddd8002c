package game

// Comparison results returned by Compare.
const (
	Loses     = -1
	NoContest = 0
	Beats     = 1
)

// Compare reports whether a beats b (Beats), b beats a (Loses), or neither
// can beat the other (NoContest) in a trick led in lead with the given trump.
// Any trump beats any non-trump. Two trumps compare by trump strength. Among
// non-trumps only a lead-suit card can win; two off-suit cards never contest.
func Compare(a, b Card, trump, lead Suit) int {
	aTrump, bTrump := a.Suit == trump, b.Suit == trump
	switch {
	case aTrump && !bTrump:
		return Beats
	case !aTrump && bTrump:
		return Loses
	case aTrump && bTrump:
		return sign(trumpStrength[a.Rank] - trumpStrength[b.Rank])
	}

	aLead, bLead := a.Suit == lead, b.Suit == lead
	switch {
	case aLead && !bLead:
		return Beats
	case !aLead && bLead:
		return Loses
	case aLead && bLead:
		return sign(plainStrength[a.Rank] - plainStrength[b.Rank])
	default:
		return NoContest
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return Beats
	case n < 0:
		return Loses
	default:
		return NoContest
	}
}
