package player

import (
	"context"
	"math"

	"golang.org/x/exp/rand"

	"pilotta/experiments/metrics"
	"pilotta/game"
	"pilotta/rules"
	"pilotta/searcher"
	"pilotta/strategy"
)

// Search bids heuristically and plays cards by MCTS. With a positive
// temperature it samples cards in proportion to their visit counts instead
// of taking the most visited one, which diversifies self-play.
type Search struct {
	*Heuristic
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
	round       int
	Moves       []metrics.MoveMetric
}

func NewSearch(personality strategy.Personality, mcts *searcher.MCTS, temperature float64, rng *rand.Rand) *Search {
	return &Search{
		Heuristic:   NewHeuristic(personality),
		mcts:        mcts,
		temperature: temperature,
		rng:         rng,
	}
}

func (s *Search) ObserveRound(seat game.Seat, rs rules.RoundScore) {
	s.Heuristic.ObserveRound(seat, rs)
	s.round++
}

func (s *Search) ChooseCard(ctx context.Context, info game.InformationSet) game.Card {
	card, stats, metric := s.mcts.Search(ctx, info)
	if s.temperature > 0 && s.rng != nil {
		card = sample(adjustTemperature(stats, s.temperature), s.rng, card)
	}
	s.Moves = append(s.Moves, metrics.MoveMetric{
		Round:        s.round + 1,
		Trick:        info.TrickNumber + 1,
		Seat:         int(info.Seat),
		Card:         card.String(),
		SearchMetric: metric,
	})
	return card
}

type weighted struct {
	card game.Card
	prob float64
}

func adjustTemperature(stats []searcher.CardStat, temperature float64) []weighted {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]weighted, len(stats))
	for i, stat := range stats {
		prob := math.Pow(float64(stat.Visits), exponent)
		sum += prob
		adjusted[i] = weighted{card: stat.Card, prob: prob}
	}
	if sum == 0 {
		return nil
	}
	// Normalize
	for i := range adjusted {
		adjusted[i].prob /= sum
	}
	return adjusted
}

func sample(policy []weighted, rng *rand.Rand, fallback game.Card) game.Card {
	sampled := rng.Float64()
	cumulative := 0.0
	for _, w := range policy {
		cumulative += w.prob
		if sampled < cumulative {
			return w.card
		}
	}
	return fallback // Rounding errors or an empty policy
}
