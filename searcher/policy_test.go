package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(math.Sqrt2, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt2*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + c*sqrt(ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCT(math.Sqrt2, 100).evaluate(5, 10)
		score2 := newUCT(math.Sqrt2, 1000).evaluate(5, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 1000)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(10, 20),
			"More child visits at the same average should lower the score")
	})
}

func TestReward(t *testing.T) {
	require.InDelta(t, 0.5, reward(0), 1e-9, "Even scores are a coin flip")
	require.Greater(t, reward(50), reward(10))
	require.InDelta(t, 1.0, reward(-30)+reward(30), 1e-9, "Reward is symmetric between teams")
	require.True(t, reward(10000) <= 1 && reward(-10000) >= 0)
}
