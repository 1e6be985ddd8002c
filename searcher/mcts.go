package searcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pilotta/experiments/metrics"
	"pilotta/game"
	"pilotta/rules"
)

// MCTS picks cards by determinized Monte Carlo tree search: several sampled
// deals of the hidden cards are searched independently and their root
// statistics summed per card.
type MCTS struct {
	config  Config
	metrics metrics.Collector
}

// CardStat is the combined root statistic of one card across determinizations.
type CardStat struct {
	Card   game.Card
	Visits int
	Total  float64
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		config:  DefaultConfig(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.config.Determinizations <= 0 {
		m.config.Determinizations = 1
	}
	if m.config.Workers <= 0 {
		m.config.Workers = 1
	}
	return m
}

func (m *MCTS) Config() Config {
	return m.config
}

// Choose returns the card to play for the seat observing info. It always
// returns a legal card, falling back to the first legal card when the search
// gathered no statistics.
func (m *MCTS) Choose(ctx context.Context, info game.InformationSet) game.Card {
	card, _, _ := m.Search(ctx, info)
	return card
}

// Search runs the search and also returns the per-card statistics in legal
// move order and the decision metrics.
func (m *MCTS) Search(ctx context.Context, info game.InformationSet) (game.Card, []CardStat, metrics.SearchMetric) {
	legal := rules.LegalPlays(info.Hand, info.Trick, info.Trump())
	if len(legal) == 0 {
		panic("searching seat has no legal card")
	}

	m.metrics.Start(m.config.Workers, m.config.SimulationDepth, m.config.Determinizations)
	if len(legal) == 1 {
		return legal[0], []CardStat{{Card: legal[0]}}, m.metrics.Complete()
	}

	if m.config.Iterations <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.TimeBudget)
		defer cancel()
	}

	trees := m.searchAll(ctx, info)

	var visits [game.DeckSize]int
	var totals [game.DeckSize]float64
	for _, t := range trees { // Index order keeps aggregation independent of workers
		if t == nil {
			continue
		}
		v, q := t.rootStats()
		for i := range visits {
			visits[i] += v[i]
			totals[i] += q[i]
		}
	}

	stats := make([]CardStat, len(legal))
	best := -1
	for i, c := range legal {
		stats[i] = CardStat{Card: c, Visits: visits[c.Index()], Total: totals[c.Index()]}
		if stats[i].Visits > 0 && (best < 0 || stats[i].Visits > stats[best].Visits) {
			best = i
		}
	}

	choice := legal[0]
	if best < 0 {
		log.Warn().Msgf("search for seat %s gathered no statistics, playing first legal card %s", info.Seat, choice)
		m.metrics.SetFallback(true)
	} else {
		choice = legal[best]
	}
	metric := m.metrics.Complete()
	log.Debug().Msgf("seat %s chose %s after %d episodes over %d determinizations", info.Seat, choice, metric.Episodes, m.config.Determinizations)
	return choice, stats, metric
}

// searchAll searches every determinization on a bounded worker pool. Seeds
// are drawn before any worker starts so each determinization sees the same
// random stream for any worker count.
func (m *MCTS) searchAll(ctx context.Context, info game.InformationSet) []*tree {
	n := m.config.Determinizations
	seed := m.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	master := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	var budget time.Duration
	if m.config.Iterations <= 0 {
		rounds := (n + m.config.Workers - 1) / m.config.Workers
		budget = m.config.TimeBudget / time.Duration(rounds)
	}

	task := make(chan int, n)
	for i := 0; i < n; i++ {
		task <- i
	}
	close(task)

	trees := make([]*tree, n)
	var wg sync.WaitGroup
	for w := 0; w < m.config.Workers && w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					return
				}
				trees[i] = m.searchOne(ctx, info, rand.New(rand.NewSource(seeds[i])), budget)
			}
		}()
	}
	wg.Wait()
	return trees
}

// searchOne runs episodes on one determinization until its iteration count,
// its time slice, or the context runs out.
func (m *MCTS) searchOne(ctx context.Context, info game.InformationSet, rng *rand.Rand, budget time.Duration) *tree {
	root := newState(info, determinize(info, rng))
	t := newTree(root)

	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}
	horizon := root.tricks + m.config.SimulationDepth

	for episode := 0; ; episode++ {
		if m.config.Iterations > 0 && episode >= m.config.Iterations {
			break
		}
		if budget > 0 && !time.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return t
		default:
		}

		leaf, s := t.selectThenExpand(root, m.config.Exploration, rng)
		t.backup(leaf, m.rollout(s, horizon, rng))
		m.metrics.AddEpisode()
	}
	return t
}

// rollout plays uniformly random legal cards until the round ends or the
// trick horizon is reached, and returns team A's reward.
func (m *MCTS) rollout(s state, horizon int, rng *rand.Rand) float64 {
	for !s.terminal() && s.tricks < horizon {
		moves := s.legalMoves()
		s = s.play(moves[rng.Intn(len(moves))]) // Random rollout policy
	}
	if s.terminal() {
		m.metrics.AddFullPlayout()
	}
	return s.evaluate()
}
