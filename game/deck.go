package game

import "golang.org/x/exp/rand"

// NewDeck returns the 32 cards in index order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a uniformly permuted copy of deck (Fisher-Yates).
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// dealPattern is the Pilotta 3-2-3 packet sequence.
var dealPattern = [...]int{3, 2, 3}

// Deal distributes a 32-card deck to the four seats in 3-2-3 packets,
// starting with the seat left of dealer. It panics on a deck of the wrong size.
func Deal(deck []Card, dealer Seat) [NumSeats]Hand {
	if len(deck) != DeckSize {
		panic("invalid deal: deck must hold 32 cards")
	}

	var hands [NumSeats]Hand
	for s := range hands {
		hands[s] = make(Hand, 0, MaxHandSize)
	}
	next := 0
	for _, packet := range dealPattern {
		seat := dealer.Next()
		for i := 0; i < NumSeats; i++ {
			hands[seat] = append(hands[seat], deck[next:next+packet]...)
			next += packet
			seat = seat.Next()
		}
	}
	return hands
}
