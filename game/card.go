package game

import "fmt"

// Suit is one of the four French suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in the deck.
const NumSuits = 4

// Suits lists every suit in enumeration order.
var Suits = [NumSuits]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank is a card rank in natural sequence order, 7 lowest and Ace highest.
// Declarations use this order; trick strength uses the tables in rules.
type Rank uint8

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks per suit.
const NumRanks = 8

// Ranks lists every rank in natural order.
var Ranks = [NumRanks]Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable playing card. Two cards are the same card when suit
// and rank match; a live deck never holds duplicates, so Index serves as
// the card's identity and no separate instance id is kept.
type Card struct {
	Suit Suit
	Rank Rank
}

// DeckSize is the number of cards in a Pilotta deck.
const DeckSize = NumSuits * NumRanks

// NewCard is shorthand for Card{Suit: s, Rank: r}.
func NewCard(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Index returns a stable identifier in [0, DeckSize) for the card.
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// CardAt is the inverse of Card.Index.
func CardAt(index int) Card {
	return Card{Suit: Suit(index / NumRanks), Rank: Rank(index % NumRanks)}
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// TrumpValue and PlainValue hold the point value of each rank, indexed by Rank.
var (
	TrumpValue = [NumRanks]int{Seven: 0, Eight: 0, Nine: 14, Ten: 10, Jack: 20, Queen: 3, King: 4, Ace: 11}
	PlainValue = [NumRanks]int{Seven: 0, Eight: 0, Nine: 0, Ten: 10, Jack: 2, Queen: 3, King: 4, Ace: 11}
)

// trumpStrength orders trump ranks J > 9 > A > 10 > K > Q > 8 > 7.
var trumpStrength = [NumRanks]int{Seven: 0, Eight: 1, Queen: 2, King: 3, Ten: 4, Ace: 5, Nine: 6, Jack: 7}

// plainStrength orders non-trump ranks A > 10 > K > Q > J > 9 > 8 > 7.
var plainStrength = [NumRanks]int{Seven: 0, Eight: 1, Nine: 2, Jack: 3, Queen: 4, King: 5, Ten: 6, Ace: 7}

// Value returns the card's point value under the trump or plain table.
func Value(c Card, isTrump bool) int {
	if isTrump {
		return TrumpValue[c.Rank]
	}
	return PlainValue[c.Rank]
}

// Strength returns the card's position in the trump or plain rank order.
// Only cards of the same relevant suit are meaningfully compared.
func Strength(c Card, isTrump bool) int {
	if isTrump {
		return trumpStrength[c.Rank]
	}
	return plainStrength[c.Rank]
}

// ValueIn is Value with trumpness derived from the trump suit.
func ValueIn(c Card, trump Suit) int {
	return Value(c, c.Suit == trump)
}

// StrengthIn is Strength with trumpness derived from the trump suit.
func StrengthIn(c Card, trump Suit) int {
	return Strength(c, c.Suit == trump)
}
