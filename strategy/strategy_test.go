package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pilotta/game"
	"pilotta/rules"
)

func c(s game.Suit, r game.Rank) game.Card { return game.NewCard(s, r) }

// strongHearts evaluates to hearts 80, side 21, tierce 20: raw 100.
var strongHearts = game.Hand{
	c(game.Hearts, game.Jack), c(game.Hearts, game.Nine), c(game.Hearts, game.Ace), c(game.Hearts, game.Ten),
	c(game.Spades, game.Ace), c(game.Clubs, game.Seven), c(game.Diamonds, game.Ten), c(game.Clubs, game.Eight),
}

var weakHand = game.Hand{
	c(game.Hearts, game.Seven), c(game.Hearts, game.Eight), c(game.Spades, game.Seven), c(game.Spades, game.Eight),
	c(game.Clubs, game.Seven), c(game.Clubs, game.Eight), c(game.Diamonds, game.Seven), c(game.Diamonds, game.Queen),
}

func TestEvaluateHand(t *testing.T) {
	ev := EvaluateHand(strongHearts)
	require.Equal(t, game.Hearts, ev.Best)
	require.Equal(t, 80, ev.BestScore(), "55 card points + jack + nine + length")
	require.Equal(t, 21, ev.Side)
	require.Equal(t, 10, ev.DeclarationBonus)
	require.Equal(t, 100, ev.Raw)
	require.InDelta(t, 0.8, ev.Confidence, 1e-9)

	t.Run("belote and long suits", func(t *testing.T) {
		hand := game.Hand{
			c(game.Clubs, game.King), c(game.Clubs, game.Queen), c(game.Clubs, game.Seven), c(game.Clubs, game.Eight),
			c(game.Clubs, game.Ten), c(game.Clubs, game.Ace),
		}
		// 4+3+0+0+10+11 = 28, length 6: +30 and +15, belote +20.
		require.Equal(t, 93, EvaluateSuit(hand, game.Clubs).Score)
	})
}

func TestChooseBid(t *testing.T) {
	neutral := Context{Seat: 0, TargetScore: 151}

	t.Run("opens with the suggested bid", func(t *testing.T) {
		require.Equal(t, game.Raise(100, game.Hearts), ChooseBid(strongHearts, nil, Balanced, neutral))
		require.Equal(t, game.Raise(90, game.Hearts), ChooseBid(strongHearts, nil, Conservative, neutral))
		require.Equal(t, game.Raise(110, game.Hearts), ChooseBid(strongHearts, nil, Aggressive, neutral))
	})

	t.Run("outbids opponents by one step when affordable", func(t *testing.T) {
		current := &game.Contract{Bidder: 1, Value: 90, Trump: game.Spades}
		require.Equal(t, game.Raise(100, game.Hearts), ChooseBid(strongHearts, current, Balanced, neutral))

		current.Value = 100
		require.Equal(t, game.Pass(), ChooseBid(strongHearts, current, Balanced, neutral))
	})

	t.Run("never outbids partner", func(t *testing.T) {
		current := &game.Contract{Bidder: 2, Value: 80, Trump: game.Spades}
		require.Equal(t, game.Pass(), ChooseBid(strongHearts, current, Aggressive, neutral))
	})

	t.Run("weak hands pass", func(t *testing.T) {
		for _, p := range []Personality{Balanced, Conservative, Aggressive, Adaptive} {
			require.Equal(t, game.Pass(), ChooseBid(weakHand, nil, p, neutral), p.String())
		}
	})

	t.Run("score context shifts the bid", func(t *testing.T) {
		behind := Context{Seat: 0, Scores: [2]int{20, 90}, TargetScore: 151}
		ahead := Context{Seat: 0, Scores: [2]int{90, 20}, TargetScore: 151}
		require.Equal(t, game.Raise(110, game.Hearts), ChooseBid(strongHearts, nil, Balanced, behind))
		require.Equal(t, game.Raise(90, game.Hearts), ChooseBid(strongHearts, nil, Balanced, ahead))
	})

	t.Run("adaptive scales by aggressiveness", func(t *testing.T) {
		ctx := neutral
		ctx.Aggressiveness = 1.2
		require.Equal(t, game.Raise(120, game.Hearts), ChooseBid(strongHearts, nil, Adaptive, ctx))
	})

	t.Run("bids stay in range", func(t *testing.T) {
		for _, v := range []int{0, 40, 79, 85, 155, 400} {
			b := roundBid(v)
			require.True(t, game.ValidBidValue(b) && b <= game.MaxBid, "%d -> %d", v, b)
		}
	})
}

func TestChooseDouble(t *testing.T) {
	contract := game.Contract{Bidder: 1, Value: 110, Trump: game.Hearts}
	ctx := Context{Seat: 0}

	require.Equal(t, game.Double(), ChooseDouble(strongHearts, contract, Balanced, ctx))
	require.Equal(t, game.Pass(), ChooseDouble(strongHearts, contract, Conservative, ctx))
	require.Equal(t, game.Pass(), ChooseDouble(weakHand, contract, Aggressive, ctx))

	own := game.Contract{Bidder: 0, Value: 110, Trump: game.Hearts, Doubled: true}
	require.Equal(t, game.Redouble(), ChooseDouble(strongHearts, own, Balanced, ctx))
	own.Redoubled = true
	require.Equal(t, game.Pass(), ChooseDouble(strongHearts, own, Balanced, ctx))
}

func info(seat game.Seat, hand game.Hand, contract game.Contract, trick game.Trick, played ...game.Card) game.InformationSet {
	set := game.SetOf(played...).Union(game.SetOf(trick.Cards()...))
	return game.InformationSet{Seat: seat, Hand: hand, Played: set, Trick: trick, Contract: contract}
}

func TestChooseCard(t *testing.T) {
	ours := game.Contract{Bidder: 0, Value: 90, Trump: game.Spades}
	theirs := game.Contract{Bidder: 1, Value: 90, Trump: game.Spades}
	legal := func(i game.InformationSet) []game.Card {
		return rules.LegalPlays(i.Hand, i.Trick, i.Trump())
	}

	t.Run("contract holder draws trumps", func(t *testing.T) {
		is := info(0, game.Hand{c(game.Spades, game.Jack), c(game.Spades, game.Seven), c(game.Hearts, game.Ace), c(game.Clubs, game.Eight)}, ours, game.Trick{})
		require.Equal(t, c(game.Spades, game.Jack), ChooseCard(is, legal(is)))
	})

	t.Run("defender cashes an ace", func(t *testing.T) {
		is := info(0, game.Hand{c(game.Spades, game.Jack), c(game.Hearts, game.Ace), c(game.Clubs, game.Eight)}, theirs, game.Trick{})
		require.Equal(t, c(game.Hearts, game.Ace), ChooseCard(is, legal(is)))
	})

	t.Run("ten is master once the ace is gone", func(t *testing.T) {
		is := info(0, game.Hand{c(game.Hearts, game.Ten), c(game.Clubs, game.Eight), c(game.Diamonds, game.Seven)}, theirs, game.Trick{}, c(game.Hearts, game.Ace))
		require.True(t, IsMaster(c(game.Hearts, game.Ten), is))
		require.Equal(t, c(game.Hearts, game.Ten), ChooseCard(is, legal(is)))
	})

	t.Run("leads low from the longest side suit", func(t *testing.T) {
		is := info(0, game.Hand{c(game.Hearts, game.King), c(game.Hearts, game.Eight), c(game.Clubs, game.Queen)}, theirs, game.Trick{})
		require.Equal(t, c(game.Hearts, game.Eight), ChooseCard(is, legal(is)))
	})

	t.Run("partner winning plays low", func(t *testing.T) {
		trick := game.NewTrick(game.Play{Seat: 2, Card: c(game.Hearts, game.Ace)}, game.Play{Seat: 3, Card: c(game.Hearts, game.Seven)})
		is := info(0, game.Hand{c(game.Hearts, game.Ten), c(game.Hearts, game.Eight)}, theirs, trick)
		require.Equal(t, c(game.Hearts, game.Eight), ChooseCard(is, legal(is)))
	})

	t.Run("beats an opponent as cheaply as possible", func(t *testing.T) {
		trick := game.NewTrick(game.Play{Seat: 1, Card: c(game.Hearts, game.King)})
		is := info(0, game.Hand{c(game.Hearts, game.Ace), c(game.Hearts, game.Ten), c(game.Hearts, game.Eight)}, theirs, trick)
		require.Equal(t, c(game.Hearts, game.Ten), ChooseCard(is, legal(is)))
	})

	t.Run("ducks when nothing beats", func(t *testing.T) {
		trick := game.NewTrick(game.Play{Seat: 1, Card: c(game.Hearts, game.Ace)})
		is := info(0, game.Hand{c(game.Hearts, game.Ten), c(game.Hearts, game.Eight)}, theirs, trick)
		require.Equal(t, c(game.Hearts, game.Eight), ChooseCard(is, legal(is)))
	})

	t.Run("always returns a legal card", func(t *testing.T) {
		deck := game.NewDeck()
		hands := game.Deal(deck, 3)
		for s := game.Seat(0); s < game.NumSeats; s++ {
			is := info(s, hands[s], ours, game.Trick{})
			require.Contains(t, legal(is), ChooseCard(is, legal(is)))
		}
	})
}

func TestProfile(t *testing.T) {
	p := NewProfile()
	p = p.Learn(rules.RoundScore{ContractMade: true}, true)
	require.InDelta(t, 1.05, p.Aggressiveness, 1e-9)
	p = p.Learn(rules.RoundScore{ContractMade: false}, true)
	require.InDelta(t, 0.95, p.Aggressiveness, 1e-9)
	require.Equal(t, 1, p.Made)
	require.Equal(t, 1, p.Failed)

	require.Equal(t, p, p.Learn(rules.RoundScore{}, false), "opposing contracts are ignored")

	for i := 0; i < 20; i++ {
		p = p.Learn(rules.RoundScore{}, true)
	}
	require.InDelta(t, MinAggressiveness, p.Aggressiveness, 1e-9)
}

func TestParsePersonality(t *testing.T) {
	p, err := ParsePersonality("Aggressive")
	require.NoError(t, err)
	require.Equal(t, Aggressive, p)

	_, err = ParsePersonality("reckless")
	require.Error(t, err)
}
