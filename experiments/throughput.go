package experiments

import (
	"time"

	"pilotta/experiments/metrics"
	"pilotta/meta"
)

const (
	NumGames   = 30 // Per matchup
	TimeBudget = 10 * time.Millisecond
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Policy: "mcts", Workers: 1, Duration: TimeBudget},
	{ID: 2, Policy: "mcts", Workers: 2, Duration: TimeBudget},
	{ID: 3, Policy: "mcts", Workers: 4, Duration: TimeBudget},
	{ID: 4, Policy: "mcts", Workers: 8, Duration: TimeBudget},
	{ID: 5, Policy: "mcts", Workers: 16, Duration: TimeBudget},
}

func preset(name string, agents []metrics.AgentConfig, matchups [][2]int) Config {
	return Config{
		Name:        name,
		Games:       NumGames,
		TargetScore: meta.TARGET_SCORE,
		MaxRounds:   meta.MAX_ROUNDS,
		OutputDir:   "experiments",
		Agents:      agents,
		Matchups:    matchups,
	}
}

// ThroughputExperiment pairs each worker count against itself, for the same
// playing strength and similar game length, to measure episodes per decision.
func ThroughputExperiment() Config {
	matchups := [][2]int{}
	for _, config := range parallelConfigs {
		matchups = append(matchups, [2]int{config.ID, config.ID})
	}
	return preset("throughput", parallelConfigs, matchups)
}

// StrengthExperiment pairs each worker count against the sequential baseline.
func StrengthExperiment() Config {
	baseline := metrics.AgentConfig{ID: 0, Policy: "mcts", Workers: 1, Duration: TimeBudget}
	matchups := [][2]int{}
	for _, config := range parallelConfigs {
		matchups = append(matchups, [2]int{baseline.ID, config.ID})
	}
	return preset("parallelization_to_strength", append([]metrics.AgentConfig{baseline}, parallelConfigs...), matchups)
}

// CutoffExperiment pairs full playouts against rollouts truncated after a
// number of tricks and scored by card points.
func CutoffExperiment() Config {
	baseline := metrics.AgentConfig{ID: 0, Policy: "mcts", Workers: 4, Duration: TimeBudget} // Full playout
	agents := []metrics.AgentConfig{
		baseline,
		{ID: 1, Policy: "mcts", Workers: baseline.Workers, Duration: baseline.Duration, Cutoff: 1},
		{ID: 2, Policy: "mcts", Workers: baseline.Workers, Duration: baseline.Duration, Cutoff: 2},
		{ID: 3, Policy: "mcts", Workers: baseline.Workers, Duration: baseline.Duration, Cutoff: 4},
	}
	matchups := [][2]int{}
	for _, config := range agents[1:] {
		matchups = append(matchups, [2]int{baseline.ID, config.ID})
	}
	return preset("cutoff", agents, matchups)
}

// PersonalityExperiment pairs every heuristic personality against the
// balanced one.
func PersonalityExperiment() Config {
	agents := []metrics.AgentConfig{
		{ID: 0, Policy: "heuristic", Personality: "balanced"},
		{ID: 1, Policy: "heuristic", Personality: "conservative"},
		{ID: 2, Policy: "heuristic", Personality: "aggressive"},
		{ID: 3, Policy: "heuristic", Personality: "adaptive"},
		{ID: 4, Policy: "random"},
	}
	matchups := [][2]int{}
	for _, config := range agents[1:] {
		matchups = append(matchups, [2]int{agents[0].ID, config.ID})
	}
	return preset("personality", agents, matchups)
}

// Presets lists the built-in experiments by name.
var Presets = map[string]func() Config{
	"throughput":  ThroughputExperiment,
	"strength":    StrengthExperiment,
	"cutoff":      CutoffExperiment,
	"personality": PersonalityExperiment,
}
