package strategy

import (
	"sort"

	"pilotta/game"
	"pilotta/rules"
)

// ChooseCard picks a card from legal for the seat observing info. legal must
// be the non-empty legal set for info.Hand.
func ChooseCard(info game.InformationSet, legal []game.Card) game.Card {
	if len(legal) == 1 {
		return legal[0]
	}
	trump := info.Trump()
	if info.Trick.Empty() {
		return lead(info, legal)
	}

	winner := rules.TrickWinner(info.Trick, trump)
	if winner.Team() == info.Seat.Team() {
		return lowest(legal, trump)
	}
	best, _ := rules.WinningCard(info.Trick, trump)
	leadSuit, _ := info.Trick.LeadSuit()
	var beating []game.Card
	for _, c := range legal {
		if game.Compare(c, best, trump, leadSuit) == game.Beats {
			beating = append(beating, c)
		}
	}
	if len(beating) > 0 {
		return lowest(beating, trump)
	}
	return lowest(legal, trump)
}

func lead(info game.InformationSet, legal []game.Card) game.Card {
	trump := info.Trump()
	hand := game.Hand(legal)

	trumps := hand.OfSuit(trump)
	if info.Contract.Team() == info.Seat.Team() && strongTrumps(trumps) && !info.Unseen().OfSuit(trump).Empty() {
		return highest(trumps, trump)
	}

	var masters []game.Card
	for _, c := range legal {
		if c.Suit != trump && IsMaster(c, info) {
			masters = append(masters, c)
		}
	}
	if len(masters) > 0 {
		return highest(masters, trump)
	}

	longest := game.Hand(nil)
	for _, suit := range game.Suits {
		if suit == trump {
			continue
		}
		if cards := hand.OfSuit(suit); len(cards) > len(longest) {
			longest = cards
		}
	}
	if len(longest) > 0 {
		return lowest(longest, trump)
	}
	return lowest(legal, trump)
}

// strongTrumps reports a trump holding worth drawing opposing trumps with:
// the Jack, or three trumps including the Nine.
func strongTrumps(trumps game.Hand) bool {
	for _, c := range trumps {
		if c.Rank == game.Jack {
			return true
		}
	}
	return len(trumps) >= 3 && trumps.Contains(game.NewCard(trumps[0].Suit, game.Nine))
}

// IsMaster reports whether c cannot be beaten within its suit: every card of
// the suit that outranks it has been played or is held by the same seat.
func IsMaster(c game.Card, info game.InformationSet) bool {
	isTrump := c.Suit == info.Trump()
	known := info.Played.Union(info.Hand.Set())
	for _, r := range game.Ranks {
		other := game.NewCard(c.Suit, r)
		if game.Strength(other, isTrump) > game.Strength(c, isTrump) && !known.Has(other) {
			return false
		}
	}
	return true
}

// byCost orders cards cheapest first: non-trumps before trumps, then by
// point value, then by strength.
func byCost(cards []game.Card, trump game.Suit) []game.Card {
	out := append([]game.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if at, bt := a.Suit == trump, b.Suit == trump; at != bt {
			return !at
		}
		if va, vb := game.ValueIn(a, trump), game.ValueIn(b, trump); va != vb {
			return va < vb
		}
		return game.StrengthIn(a, trump) < game.StrengthIn(b, trump)
	})
	return out
}

func lowest(cards []game.Card, trump game.Suit) game.Card {
	return byCost(cards, trump)[0]
}

func highest(cards []game.Card, trump game.Suit) game.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if game.StrengthIn(c, trump) > game.StrengthIn(best, trump) ||
			game.StrengthIn(c, trump) == game.StrengthIn(best, trump) && game.ValueIn(c, trump) > game.ValueIn(best, trump) {
			best = c
		}
	}
	return best
}
