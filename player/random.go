package player

import (
	"context"

	"golang.org/x/exp/rand"

	"pilotta/engine"
	"pilotta/game"
	"pilotta/rules"
)

// Random passes every auction turn unless it opens, and plays uniformly
// random legal cards. It is the baseline opponent for experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) ChooseBid(ctx context.Context, view engine.BidView) game.Bid {
	if view.Contract == nil && r.rng.Intn(game.NumSeats) == 0 {
		return game.Raise(game.MinBid, game.Suits[r.rng.Intn(game.NumSuits)])
	}
	return game.Pass()
}

func (r *Random) ChooseCard(ctx context.Context, info game.InformationSet) game.Card {
	legal := rules.LegalPlays(info.Hand, info.Trick, info.Trump())
	return legal[r.rng.Intn(len(legal))]
}
