package game

import "math/bits"

// CardSet is a bitset over the 32-card deck, bit i set for CardAt(i).
// Its value semantics make it cheap to copy into search states.
type CardSet uint32

// FullDeck holds every card.
const FullDeck CardSet = 1<<DeckSize - 1

// SetOf builds a set from cards.
func SetOf(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

func (s CardSet) Add(c Card) CardSet { return s | 1<<c.Index() }
func (s CardSet) Remove(c Card) CardSet { return s &^ (1 << c.Index()) }
func (s CardSet) Has(c Card) bool { return s&(1<<c.Index()) != 0 }
func (s CardSet) Len() int { return bits.OnesCount32(uint32(s)) }
func (s CardSet) Empty() bool { return s == 0 }

// Union returns the cards in either set.
func (s CardSet) Union(o CardSet) CardSet { return s | o }

// Minus returns the cards of s not in o.
func (s CardSet) Minus(o CardSet) CardSet { return s &^ o }

// OfSuit returns the cards of s in suit.
func (s CardSet) OfSuit(suit Suit) CardSet {
	return s & (CardSet(1<<NumRanks-1) << (uint(suit) * NumRanks))
}

// Cards lists the set in index order (suit, then natural rank).
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		cards = append(cards, CardAt(bits.TrailingZeros32(rest)))
	}
	return cards
}
