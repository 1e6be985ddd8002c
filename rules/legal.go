package rules

import "pilotta/game"

// LegalPlays returns the cards hand may play to trick, in hand order. It is
// never empty for a non-empty hand. Priority:
//   - empty trick: any card
//   - holding the lead suit: lead-suit cards only
//   - void in lead suit, holding trump: a trump that beats the highest trump
//     already in the trick if one exists, otherwise any trump
//   - void in both: any card
func LegalPlays(hand game.Hand, trick game.Trick, trump game.Suit) []game.Card {
	if len(hand) == 0 {
		return nil
	}
	lead, ok := trick.LeadSuit()
	if !ok {
		return hand.Clone()
	}

	if follow := hand.OfSuit(lead); len(follow) > 0 {
		return follow
	}

	trumps := hand.OfSuit(trump)
	if len(trumps) == 0 {
		return hand.Clone()
	}

	highest, found := highestTrump(trick, trump)
	if !found {
		return trumps
	}
	var over []game.Card
	for _, c := range trumps {
		if game.StrengthIn(c, trump) > game.StrengthIn(highest, trump) {
			over = append(over, c)
		}
	}
	if len(over) > 0 {
		return over
	}
	return trumps
}

// IsLegal reports whether c is among LegalPlays.
func IsLegal(c game.Card, hand game.Hand, trick game.Trick, trump game.Suit) bool {
	for _, legal := range LegalPlays(hand, trick, trump) {
		if legal == c {
			return true
		}
	}
	return false
}

func highestTrump(trick game.Trick, trump game.Suit) (game.Card, bool) {
	var best game.Card
	found := false
	for _, p := range trick.Played() {
		if p.Card.Suit != trump {
			continue
		}
		if !found || game.StrengthIn(p.Card, trump) > game.StrengthIn(best, trump) {
			best = p.Card
			found = true
		}
	}
	return best, found
}
