package searcher

import (
	"math"
	"time"

	"pilotta/experiments/metrics"
	"pilotta/game"
	"pilotta/meta"
)

// Config tunes a search. Iterations, when positive, replaces the time budget
// with a fixed number of episodes per determinization, which makes a seeded
// search reproducible.
type Config struct {
	TimeBudget       time.Duration
	Exploration      float64
	SimulationDepth  int // in tricks
	Determinizations int
	Iterations       int
	Workers          int
	Seed             uint64
}

func DefaultConfig() Config {
	return Config{
		TimeBudget:       meta.SearchTimeBudget,
		Exploration:      math.Sqrt2,
		SimulationDepth:  game.NumTricks,
		Determinizations: meta.Determinizations,
		Workers:          1,
	}
}

type Option func(m *MCTS)

// WithConfig replaces the configuration. Zero fields take their defaults, so
// a zero Config searches with the default time budget.
func WithConfig(config Config) Option {
	return func(m *MCTS) {
		defaults := DefaultConfig()
		if config.TimeBudget <= 0 && config.Iterations <= 0 {
			config.TimeBudget = defaults.TimeBudget
		}
		if config.Exploration <= 0 {
			config.Exploration = defaults.Exploration
		}
		if config.SimulationDepth <= 0 {
			config.SimulationDepth = defaults.SimulationDepth
		}
		if config.Determinizations <= 0 {
			config.Determinizations = defaults.Determinizations
		}
		if config.Workers <= 0 {
			config.Workers = defaults.Workers
		}
		m.config = config
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.config.TimeBudget = duration
		}
	}
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.config.Iterations = iterations
		}
	}
}

func WithCutoff(tricks int) Option {
	return func(m *MCTS) {
		if tricks > 0 {
			m.config.SimulationDepth = tricks
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.config.Exploration = c
		}
	}
}

func WithDeterminizations(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.config.Determinizations = n
		}
	}
}

func WithWorkers(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.config.Workers = n
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.config.Seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}
