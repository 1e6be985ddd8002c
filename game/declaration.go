package game

// DeclarationKind enumerates the declarable combinations.
type DeclarationKind int

const (
	Sequence3 DeclarationKind = iota
	Sequence4
	Sequence5
	FourOfAKind
	Belote
)

func (k DeclarationKind) String() string {
	switch k {
	case Sequence3:
		return "tierce"
	case Sequence4:
		return "quarte"
	case Sequence5:
		return "quinte"
	case FourOfAKind:
		return "carre"
	case Belote:
		return "belote"
	default:
		return "?"
	}
}

// IsSequence reports whether k is a run of consecutive ranks.
func (k DeclarationKind) IsSequence() bool {
	return k == Sequence3 || k == Sequence4 || k == Sequence5
}

// Declaration is a combination found in a seat's dealt hand. Cards are in
// natural rank order.
type Declaration struct {
	Kind   DeclarationKind
	Cards  []Card
	Points int
	Seat   Seat
}

// High returns the highest natural-rank member card.
func (d Declaration) High() Card {
	high := d.Cards[0]
	for _, c := range d.Cards[1:] {
		if c.Rank > high.Rank {
			high = c
		}
	}
	return high
}

// Length is the number of member cards.
func (d Declaration) Length() int {
	return len(d.Cards)
}
