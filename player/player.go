package player

import (
	"context"
	"fmt"
	"strings"

	"pilotta/game"
	"pilotta/rules"
	"pilotta/searcher"
	"pilotta/strategy"
)

// Policy selects how an automated seat picks cards.
type Policy int

const (
	HeuristicPolicy Policy = iota
	MCTSPolicy
	RandomPolicy
)

func (p Policy) String() string {
	switch p {
	case HeuristicPolicy:
		return "heuristic"
	case MCTSPolicy:
		return "mcts"
	case RandomPolicy:
		return "random"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(name string) (Policy, error) {
	for _, p := range []Policy{HeuristicPolicy, MCTSPolicy, RandomPolicy} {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return HeuristicPolicy, fmt.Errorf("unknown policy %q", name)
}

// ChooseAIBid returns the heuristic bid for hand against the standing
// contract (nil when nobody has bid).
func ChooseAIBid(hand game.Hand, contract *game.Contract, personality strategy.Personality, ctx strategy.Context) game.Bid {
	if contract != nil {
		if b := strategy.ChooseDouble(hand, *contract, personality, ctx); b.Kind != game.BidPass {
			return b
		}
	}
	return strategy.ChooseBid(hand, contract, personality, ctx)
}

// ChooseAICard returns the card policy picks for info. The search
// configuration is only used by MCTSPolicy; its zero fields take the
// searcher defaults.
func ChooseAICard(ctx context.Context, info game.InformationSet, policy Policy, config searcher.Config) game.Card {
	legal := rules.LegalPlays(info.Hand, info.Trick, info.Trump())
	switch policy {
	case MCTSPolicy:
		return searcher.NewMCTS(searcher.WithConfig(config)).Choose(ctx, info)
	default:
		return strategy.ChooseCard(info, legal)
	}
}
