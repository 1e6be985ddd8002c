package strategy

import (
	"math"

	"pilotta/game"
)

// secondaryScore is the minimum score a secondary suit needs before an
// aggressive seat stretches into it.
const secondaryScore = 40

// Suggestion is a personality- and context-adjusted view of a hand.
type Suggestion struct {
	Evaluation
	Bid        int
	Confidence float64
	Threshold  float64
}

// Suggest applies the personality and score context to an evaluation.
func Suggest(hand game.Hand, p Personality, ctx Context) Suggestion {
	ev := EvaluateHand(hand)
	b := BehaviorOf(p, ctx.Aggressiveness)
	raw := int(math.Round(float64(ev.Raw)*b.BidScale)) + b.BidShift + ctx.bidShift()
	return Suggestion{
		Evaluation: ev,
		Bid:        roundBid(raw),
		Confidence: clamp(ev.Confidence*b.ConfidenceScale, 0, 1),
		Threshold:  b.Threshold * ctx.thresholdScale(),
	}
}

// ChooseBid returns the bid an automated seat makes. current is nil while
// nobody has bid. A seat never outbids its own team.
func ChooseBid(hand game.Hand, current *game.Contract, p Personality, ctx Context) game.Bid {
	s := Suggest(hand, p, ctx)
	if s.Confidence < s.Threshold {
		return game.Pass()
	}
	if current == nil {
		return game.Raise(s.Bid, s.Best)
	}
	if current.Team() == ctx.Seat.Team() {
		return game.Pass()
	}

	need, ok := game.NextBidValue(current.Value)
	if !ok || need > game.MaxBid {
		return game.Pass()
	}
	if need <= s.Bid {
		return game.Raise(need, s.Best)
	}
	if BehaviorOf(p, ctx.Aggressiveness).Stretch && s.Confidence >= highConfidence && need <= s.Bid+game.BidStep {
		if second := s.Secondary(); second.Score > secondaryScore {
			return game.Raise(need, second.Suit)
		}
	}
	return game.Pass()
}

// Double and redouble triggers.
const (
	doubleScore   = 50
	redoubleScore = 60
)

// ChooseDouble decides whether seat doubles an opposing contract or
// redoubles its own team's doubled contract. It returns a pass when neither
// applies.
func ChooseDouble(hand game.Hand, contract game.Contract, p Personality, ctx Context) game.Bid {
	if p == Conservative {
		return game.Pass()
	}
	trump := EvaluateSuit(hand, contract.Trump)
	threshold := doubleScore
	if p == Aggressive {
		threshold -= 10
	}

	if contract.Team() != ctx.Seat.Team() {
		if !contract.Doubled && trump.Score >= threshold && contract.Value >= 100 {
			return game.Double()
		}
		return game.Pass()
	}
	if contract.Doubled && !contract.Redoubled && contract.Bidder == ctx.Seat && trump.Score >= redoubleScore {
		return game.Redouble()
	}
	return game.Pass()
}
