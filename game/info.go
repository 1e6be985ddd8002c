package game

// InformationSet is everything one seat may legitimately observe when it
// has to play: its own hand, every card played, the contract and the
// scores. Opponent hands are absent.
type InformationSet struct {
	Seat        Seat
	Hand        Hand
	Played      CardSet
	Trick       Trick
	TrickNumber int
	Leader      Seat
	Contract    Contract
	TrickPoints [NumTeams]int
	TricksWon   [NumTeams]int
	Bonus       [NumTeams]int
	Scores      [NumTeams]int
	TargetScore int
}

// Trump is the contract trump suit.
func (i InformationSet) Trump() Suit {
	return i.Contract.Trump
}

// Unseen returns the cards the seat has neither held nor seen played.
func (i InformationSet) Unseen() CardSet {
	return FullDeck.Minus(i.Hand.Set()).Minus(i.Played)
}

// HandSizes returns how many cards each seat still holds.
func (i InformationSet) HandSizes() [NumSeats]int {
	var sizes [NumSeats]int
	for s := Seat(0); s < NumSeats; s++ {
		sizes[s] = MaxHandSize - i.TrickNumber
		if i.Trick.HasPlayed(s) {
			sizes[s]--
		}
	}
	return sizes
}
