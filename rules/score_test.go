package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pilotta/game"
)

func contractA(value int) game.Contract {
	return game.Contract{Bidder: 0, Value: value, Trump: game.Hearts}
}

func TestScoreRound(t *testing.T) {
	t.Run("made contract with belote and tied remainders", func(t *testing.T) {
		in := RoundInput{
			Contract:    contractA(82),
			TrickPoints: [2]int{86, 56},
			TricksWon:   [2]int{5, 3},
			Belote:      [2]int{20, 0},
			LastTrick:   game.TeamA,
		}
		rs := ScoreRound(in)

		require.Equal(t, [2]int{96, 56}, rs.TrickPoints, "last trick adds ten")
		require.Equal(t, [2]int{116, 56}, rs.Raw)
		require.True(t, rs.ContractMade)
		// Both remainders are 6: team A took more trick points and rounds up.
		require.Equal(t, [2]int{12, 5}, rs.Final)
		require.False(t, rs.RoundingTie)
	})

	t.Run("capot with belote", func(t *testing.T) {
		rs := ScoreRound(RoundInput{
			Contract:    contractA(82),
			TrickPoints: [2]int{152, 0},
			TricksWon:   [2]int{8, 0},
			Belote:      [2]int{20, 0},
			LastTrick:   game.TeamA,
		})
		require.Equal(t, game.TeamA, rs.Capot)
		require.Equal(t, [2]int{270, 0}, rs.Raw)
		require.Equal(t, [2]int{27, 0}, rs.Final)
	})

	t.Run("capot ignores individual card points", func(t *testing.T) {
		for _, points := range []int{40, 152} {
			rs := ScoreRound(RoundInput{
				Contract:     contractA(100),
				TrickPoints:  [2]int{points, 0},
				TricksWon:    [2]int{0, 8},
				Declarations: [2]int{0, 50},
				LastTrick:    game.TeamB,
			})
			require.Equal(t, game.TeamB, rs.Capot)
			require.Equal(t, [2]int{0, 100 + 250 + 50}, rs.Raw)
			require.Equal(t, 250, rs.TrickPoints[game.TeamB])
		}
	})

	t.Run("failed contract goes to defenders", func(t *testing.T) {
		rs := ScoreRound(RoundInput{
			Contract:     contractA(120),
			TrickPoints:  [2]int{71, 81},
			TricksWon:    [2]int{4, 4},
			Declarations: [2]int{20, 0},
			LastTrick:    game.TeamB,
		})
		require.False(t, rs.ContractMade)
		// Pre-failure totals: A 71+20=91, B 81+10=91.
		require.Equal(t, [2]int{0, 120 + 91 + 91}, rs.Raw)
		require.Equal(t, [2]int{0, 31}, rs.Final, "B holds the larger remainder and rounds up")
	})

	t.Run("failed doubled contract folds the multiplier into the award", func(t *testing.T) {
		ct := contractA(100)
		ct.Doubled = true
		rs := ScoreRound(RoundInput{
			Contract:    ct,
			TrickPoints: [2]int{60, 92},
			TricksWon:   [2]int{3, 5},
			LastTrick:   game.TeamB,
		})
		require.Equal(t, [2]int{0, 200 + 60 + 102}, rs.Raw)
		require.Equal(t, [2]int{0, 37}, rs.Final)
	})

	t.Run("made redoubled contract multiplies both teams", func(t *testing.T) {
		ct := contractA(80)
		ct.Doubled, ct.Redoubled = true, true
		rs := ScoreRound(RoundInput{
			Contract:    ct,
			TrickPoints: [2]int{100, 52},
			TricksWon:   [2]int{6, 2},
			LastTrick:   game.TeamA,
		})
		require.True(t, rs.ContractMade)
		require.Equal(t, [2]int{440, 208}, rs.Raw)
		require.Equal(t, [2]int{44, 21}, rs.Final, "B has the larger remainder and rounds up")
	})

	t.Run("declarations count even when the contract fails", func(t *testing.T) {
		rs := ScoreRound(RoundInput{
			Contract:     contractA(160),
			TrickPoints:  [2]int{100, 52},
			TricksWon:    [2]int{6, 2},
			Declarations: [2]int{0, 100},
			LastTrick:    game.TeamA,
		})
		require.False(t, rs.ContractMade)
		require.Equal(t, 160+110+152, rs.Raw[game.TeamB])
		require.Equal(t, 0, rs.Final[game.TeamA])
	})

	t.Run("full tie rounds the contracting team up", func(t *testing.T) {
		rs := ScoreRound(RoundInput{
			Contract:     game.Contract{Bidder: 1, Value: 80, Trump: game.Clubs},
			TrickPoints:  [2]int{71, 71},
			TricksWon:    [2]int{4, 4},
			Declarations: [2]int{0, 0},
			Belote:       [2]int{20, 0},
			LastTrick:    game.TeamB,
		})
		// A 71+20=91, B 81: remainders 1 and 1, trick points 71 vs 81.
		require.Equal(t, [2]int{9, 9}, rs.Final)
		require.False(t, rs.RoundingTie)

		rs = ScoreRound(RoundInput{
			Contract:     game.Contract{Bidder: 1, Value: 80, Trump: game.Clubs},
			TrickPoints:  [2]int{81, 71},
			TricksWon:    [2]int{4, 4},
			Declarations: [2]int{20, 20},
			LastTrick:    game.TeamB,
		})
		// A 101, B 101: remainders and trick points are both equal.
		require.True(t, rs.ContractMade)
		require.True(t, rs.RoundingTie)
		require.Equal(t, [2]int{10, 11}, rs.Final, "contracting team B rounds up")
	})

	t.Run("pure and deterministic", func(t *testing.T) {
		in := RoundInput{Contract: contractA(90), TrickPoints: [2]int{77, 75}, TricksWon: [2]int{4, 4}, LastTrick: game.TeamA}
		require.Equal(t, ScoreRound(in), ScoreRound(in))
	})
}

func TestEarlyTermination(t *testing.T) {
	require.Equal(t, 4*33+10, MaxRemaining(4))
	require.Equal(t, 0, MaxRemaining(8))

	require.False(t, ContractUnreachable(0, 3, 160), "not checked before four tricks")
	require.True(t, ContractUnreachable(10, 4, 160), "10 + 142 < 160")
	require.False(t, ContractUnreachable(20, 4, 160), "20 + 142 >= 160")

	t.Run("sweep lock", func(t *testing.T) {
		trump := game.Spades
		var hands [game.NumSeats]game.Hand
		hands[0] = game.Hand{c(game.Spades, game.Jack)}
		hands[2] = game.Hand{c(game.Spades, game.Seven)}
		hands[1] = game.Hand{c(game.Hearts, game.Ace)}
		hands[3] = game.Hand{c(game.Clubs, game.Ace)}
		require.True(t, SweepLocked(hands, trump, game.TeamA))
		require.False(t, SweepLocked(hands, trump, game.TeamB))

		hands[3] = game.Hand{c(game.Spades, game.Eight)}
		require.False(t, SweepLocked(hands, trump, game.TeamA), "opponent holds trump")
	})
}
