package game

import (
	"sort"

	"pilotta/utils"
)

// Hand is the multiset of cards a seat holds. Methods never mutate the
// receiver; removal returns a new slice.
type Hand []Card

// MaxHandSize is the number of cards dealt to each seat.
const MaxHandSize = 8

func (h Hand) Contains(c Card) bool {
	return utils.FindIndex(h, c) >= 0
}

// Remove returns a copy of h without c and whether c was present.
func (h Hand) Remove(c Card) (Hand, bool) {
	i := utils.FindIndex(h, c)
	if i < 0 {
		return h, false
	}
	return utils.RemoveAt(h, i), true
}

// OfSuit returns the cards of h in suit, in hand order.
func (h Hand) OfSuit(suit Suit) Hand {
	return utils.Filter(h, func(c Card) bool { return c.Suit == suit })
}

func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func (h Hand) Set() CardSet {
	return SetOf(h...)
}

func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	return append(Hand(nil), h...)
}

// Sorted returns a copy ordered by suit and natural rank.
func (h Hand) Sorted() Hand {
	out := h.Clone()
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
