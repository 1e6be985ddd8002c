package rules

import "pilotta/game"

// TrickWinner returns the seat currently winning trick: the play that beats
// every other under game.Compare against the lead suit. It works on partial
// tricks too and returns game.NoSeat for an empty one.
func TrickWinner(trick game.Trick, trump game.Suit) game.Seat {
	i := winningIndex(trick, trump)
	if i < 0 {
		return game.NoSeat
	}
	return trick.Plays[i].Seat
}

// WinningCard returns the card currently winning trick.
func WinningCard(trick game.Trick, trump game.Suit) (game.Card, bool) {
	i := winningIndex(trick, trump)
	if i < 0 {
		return game.Card{}, false
	}
	return trick.Plays[i].Card, true
}

func winningIndex(trick game.Trick, trump game.Suit) int {
	lead, ok := trick.LeadSuit()
	if !ok {
		return -1
	}
	best := 0
	for i := 1; i < trick.Len(); i++ {
		if game.Compare(trick.Plays[i].Card, trick.Plays[best].Card, trump, lead) == game.Beats {
			best = i
		}
	}
	return best
}

// TrickPoints sums the card values of trick.
func TrickPoints(trick game.Trick, trump game.Suit) int {
	return CardPoints(trick.Cards(), trump)
}

// CardPoints sums the values of cards under trump.
func CardPoints(cards []game.Card, trump game.Suit) int {
	total := 0
	for _, c := range cards {
		total += game.ValueIn(c, trump)
	}
	return total
}

// Seal resolves a full trick into a CompletedTrick. It panics if the trick
// does not hold four plays from four distinct seats.
func Seal(trick game.Trick, trump game.Suit) game.CompletedTrick {
	if !trick.Full() {
		panic("cannot seal a trick with fewer than four plays")
	}
	var seen [game.NumSeats]bool
	for _, p := range trick.Plays {
		if !p.Seat.Valid() || seen[p.Seat] {
			panic("trick must hold one play from each seat")
		}
		seen[p.Seat] = true
	}
	return game.CompletedTrick{
		Plays:  trick.Plays,
		Winner: TrickWinner(trick, trump),
		Points: TrickPoints(trick, trump),
	}
}
