package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts episodes and playouts per decision", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 8, 10)
		c.AddEpisode()
		c.AddEpisode()
		c.AddFullPlayout()
		c.SetFallback(true)

		m := c.Complete()
		require.Equal(t, 4, m.Workers)
		require.Equal(t, 8, m.Cutoff)
		require.Equal(t, 10, m.Determinizations)
		require.Equal(t, 2, m.Episodes)
		require.Equal(t, 1, m.FullPlayouts)
		require.True(t, m.FellBack)

		c.Start(1, 8, 10)
		require.Zero(t, c.Complete().Episodes, "Start should reset the counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 8, 10)
		c.AddEpisode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Policy: "mcts", Workers: 2}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: "g1", TeamA: 1, TeamB: 2, GameMetric: GameMetric{Winner: "A", Scores: [2]int{160, 90}}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: "g1", Agent: 1, MoveMetric: MoveMetric{Round: 1, Trick: 1, Card: "JS"}}}))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "Header plus one record")
	require.Equal(t, []string{"g1", "1", "2"}, rows[1][:3])
	require.Equal(t, "160", rows[1][5])
}
