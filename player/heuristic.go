package player

import (
	"context"

	"pilotta/engine"
	"pilotta/game"
	"pilotta/rules"
	"pilotta/strategy"
)

// Heuristic bids and plays with the hand-evaluation strategy. Adaptive
// personalities learn from every settled round.
type Heuristic struct {
	Personality strategy.Personality
	Profile     strategy.Profile
}

func NewHeuristic(personality strategy.Personality) *Heuristic {
	return &Heuristic{Personality: personality, Profile: strategy.NewProfile()}
}

func (h *Heuristic) context(view engine.BidView) strategy.Context {
	return strategy.Context{
		Seat:           view.Seat,
		Scores:         view.Scores,
		TargetScore:    view.TargetScore,
		Aggressiveness: h.Profile.Aggressiveness,
	}
}

func (h *Heuristic) ChooseBid(ctx context.Context, view engine.BidView) game.Bid {
	return ChooseAIBid(view.Hand, view.Contract, h.Personality, h.context(view))
}

func (h *Heuristic) ChooseCard(ctx context.Context, info game.InformationSet) game.Card {
	return strategy.ChooseCard(info, rules.LegalPlays(info.Hand, info.Trick, info.Trump()))
}

func (h *Heuristic) ObserveRound(seat game.Seat, rs rules.RoundScore) {
	h.Profile = h.Profile.Learn(rs, rs.Contract.Team() == seat.Team())
}
