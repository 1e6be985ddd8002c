package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pilotta/experiments/metrics"
)

const sampleConfig = `
name: smoke
games: 2
max_rounds: 3
seed: 9
agents:
  - id: 1
    policy: heuristic
    personality: aggressive
  - id: 2
    policy: mcts
    iterations: 10
    determinizations: 2
    duration: 50ms
matchups:
  - [1, 2]
`

func TestLoadConfig(t *testing.T) {
	t.Run("parses agents and applies defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smoke.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "smoke", config.Name)
		require.Equal(t, 2, config.Games)
		require.Equal(t, 151, config.TargetScore)
		require.Equal(t, 3, config.MaxRounds)
		require.Len(t, config.Agents, 2)
		require.Equal(t, 50*time.Millisecond, config.Agents[1].Duration)
		require.Equal(t, [][2]int{{1, 2}}, config.Matchups)
	})

	t.Run("rejects unknown agents", func(t *testing.T) {
		config := Config{Name: "bad", Games: 1, Agents: []metrics.AgentConfig{{ID: 1, Policy: "random"}}, Matchups: [][2]int{{1, 7}}}
		require.Error(t, config.Validate())
	})

	t.Run("rejects unknown policies", func(t *testing.T) {
		config := Config{Name: "bad", Games: 1, Agents: []metrics.AgentConfig{{ID: 1, Policy: "oracle"}}, Matchups: [][2]int{{1, 1}}}
		require.Error(t, config.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	config := Config{
		Name:        "smoke",
		Games:       2,
		TargetScore: 151,
		MaxRounds:   2,
		Seed:        5,
		OutputDir:   t.TempDir(),
		Agents: []metrics.AgentConfig{
			{ID: 1, Policy: "heuristic"},
			{ID: 2, Policy: "mcts", Iterations: 10, Determinizations: 2},
		},
		Matchups: [][2]int{{1, 2}},
	}

	result, err := Run(context.Background(), config)
	require.NoError(t, err)
	require.Len(t, result.Games, 2)
	for _, g := range result.Games {
		require.Equal(t, 1, g.TeamA)
		require.Equal(t, 2, g.TeamB)
		require.LessOrEqual(t, g.Rounds, 2)
		require.NotEmpty(t, g.ID)
	}
	require.NotEmpty(t, result.Moves, "The search team should have recorded its decisions")
	for _, m := range result.Moves {
		require.Equal(t, 2, m.Agent)
		require.Equal(t, 1, m.Seat%2, "Only team B seats search")
	}

	entries, err := os.ReadDir(filepath.Join(config.OutputDir, "smoke"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(config.OutputDir, "smoke", entries[0].Name(), file))
		require.NoError(t, err)
	}
}

func TestPresets(t *testing.T) {
	for name, preset := range Presets {
		require.NoError(t, preset().Validate(), name)
	}
}
