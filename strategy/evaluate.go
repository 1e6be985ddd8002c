package strategy

import (
	"pilotta/game"
	"pilotta/rules"
)

// Hand evaluation bonuses.
const (
	jackBonus   = 10
	nineBonus   = 5
	beloteBonus = 20
	lengthBonus = 10
	longBonus   = 15
)

// SuitEvaluation scores one candidate trump suit.
type SuitEvaluation struct {
	Suit   game.Suit
	Score  int
	Length int
}

// Evaluation is the bidding view of a hand.
type Evaluation struct {
	Suits [game.NumSuits]SuitEvaluation
	Best  game.Suit
	// Side is the Ace and Ten points held outside Best.
	Side             int
	DeclarationBonus int
	// Raw is the unrounded bid estimate before personality adjustments.
	Raw        int
	Confidence float64
}

// BestScore is the score of the candidate trump suit.
func (e Evaluation) BestScore() int {
	return e.Suits[e.Best].Score
}

// Secondary returns the strongest suit other than Best.
func (e Evaluation) Secondary() SuitEvaluation {
	var second SuitEvaluation
	found := false
	for _, s := range e.Suits {
		if s.Suit == e.Best {
			continue
		}
		if !found || s.Score > second.Score {
			second, found = s, true
		}
	}
	return second
}

// EvaluateSuit scores suit as trump for hand.
func EvaluateSuit(hand game.Hand, suit game.Suit) SuitEvaluation {
	cards := hand.OfSuit(suit)
	ev := SuitEvaluation{Suit: suit, Length: len(cards)}
	for _, c := range cards {
		ev.Score += game.TrumpValue[c.Rank]
		switch c.Rank {
		case game.Jack:
			ev.Score += jackBonus
		case game.Nine:
			ev.Score += nineBonus
		}
	}
	if n := len(cards); n >= 4 {
		ev.Score += lengthBonus * (n - 3)
		if n >= 6 {
			ev.Score += longBonus * (n - 5)
		}
	}
	if rules.CheckBelote(hand, suit) {
		ev.Score += beloteBonus
	}
	return ev
}

// EvaluateHand scores every suit as trump and derives the raw bid estimate.
func EvaluateHand(hand game.Hand) Evaluation {
	var ev Evaluation
	for _, suit := range game.Suits {
		ev.Suits[suit] = EvaluateSuit(hand, suit)
		if ev.Suits[suit].Score > ev.Suits[ev.Best].Score {
			ev.Best = suit
		}
	}
	for _, c := range hand {
		if c.Suit != ev.Best && (c.Rank == game.Ace || c.Rank == game.Ten) {
			ev.Side += game.PlainValue[c.Rank]
		}
	}
	// Declarations only score when shown by the stronger team; count half.
	ev.DeclarationBonus = rules.DeclarationPoints(rules.FindDeclarations(hand, game.NoSeat)) / 2
	ev.Raw = ev.BestScore() + ev.Side/2 + ev.DeclarationBonus
	ev.Confidence = clamp(float64(ev.BestScore())/100, 0, 1)
	return ev
}

// roundBid rounds v to the nearest bid step and clamps it to the ordinary
// bid range.
func roundBid(v int) int {
	v = (v + game.BidStep/2) / game.BidStep * game.BidStep
	switch {
	case v < game.MinBid:
		return game.MinBid
	case v > game.MaxBid:
		return game.MaxBid
	default:
		return v
	}
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
