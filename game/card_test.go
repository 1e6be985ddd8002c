package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCardValues(t *testing.T) {
	t.Run("trump table", func(t *testing.T) {
		want := map[Rank]int{Jack: 20, Nine: 14, Ace: 11, Ten: 10, King: 4, Queen: 3, Eight: 0, Seven: 0}
		for r, v := range want {
			require.Equal(t, v, Value(NewCard(Hearts, r), true), "trump value of %s", r)
		}
	})

	t.Run("plain table", func(t *testing.T) {
		want := map[Rank]int{Ace: 11, Ten: 10, King: 4, Queen: 3, Jack: 2, Nine: 0, Eight: 0, Seven: 0}
		for r, v := range want {
			require.Equal(t, v, Value(NewCard(Hearts, r), false), "plain value of %s", r)
		}
	})

	t.Run("deck totals 152 card points", func(t *testing.T) {
		total := 0
		for _, c := range NewDeck() {
			total += ValueIn(c, Spades)
		}
		require.Equal(t, 152, total)
	})
}

func TestStrengthOrder(t *testing.T) {
	trumpOrder := []Rank{Seven, Eight, Queen, King, Ten, Ace, Nine, Jack}
	for i := 1; i < len(trumpOrder); i++ {
		require.Greater(t, Strength(NewCard(Clubs, trumpOrder[i]), true), Strength(NewCard(Clubs, trumpOrder[i-1]), true),
			"trump %s should beat %s", trumpOrder[i], trumpOrder[i-1])
	}
	plainOrder := []Rank{Seven, Eight, Nine, Jack, Queen, King, Ten, Ace}
	for i := 1; i < len(plainOrder); i++ {
		require.Greater(t, Strength(NewCard(Clubs, plainOrder[i]), false), Strength(NewCard(Clubs, plainOrder[i-1]), false),
			"plain %s should beat %s", plainOrder[i], plainOrder[i-1])
	}
}

func TestCompare(t *testing.T) {
	trump, lead := Spades, Hearts

	t.Run("any trump beats any non-trump", func(t *testing.T) {
		require.Equal(t, Beats, Compare(NewCard(Spades, Seven), NewCard(Hearts, Ace), trump, lead))
		require.Equal(t, Loses, Compare(NewCard(Hearts, Ace), NewCard(Spades, Seven), trump, lead))
	})

	t.Run("trumps compare by trump order", func(t *testing.T) {
		require.Equal(t, Beats, Compare(NewCard(Spades, Nine), NewCard(Spades, Ace), trump, lead))
		require.Equal(t, Loses, Compare(NewCard(Spades, Ten), NewCard(Spades, Jack), trump, lead))
	})

	t.Run("lead suit beats off suit", func(t *testing.T) {
		require.Equal(t, Beats, Compare(NewCard(Hearts, Seven), NewCard(Clubs, Ace), trump, lead))
		require.Equal(t, Beats, Compare(NewCard(Hearts, Ten), NewCard(Hearts, King), trump, lead))
	})

	t.Run("off-suit non-trumps do not contest", func(t *testing.T) {
		require.Equal(t, NoContest, Compare(NewCard(Clubs, Ace), NewCard(Diamonds, Seven), trump, lead))
		require.Equal(t, NoContest, Compare(NewCard(Clubs, Ace), NewCard(Clubs, Seven), trump, lead))
	})

	t.Run("antisymmetric over the whole deck", func(t *testing.T) {
		deck := NewDeck()
		for _, a := range deck {
			for _, b := range deck {
				require.Equal(t, -Compare(b, a, trump, lead), Compare(a, b, trump, lead), "%s vs %s", a, b)
			}
		}
	})
}

func TestCardSet(t *testing.T) {
	set := SetOf(NewCard(Hearts, Ace), NewCard(Spades, Seven), NewCard(Hearts, Nine))

	require.Equal(t, 3, set.Len())
	require.True(t, set.Has(NewCard(Spades, Seven)))
	require.False(t, set.Has(NewCard(Spades, Eight)))
	require.Equal(t, []Card{NewCard(Hearts, Nine), NewCard(Hearts, Ace)}, set.OfSuit(Hearts).Cards(), "Cards should list in index order")
	require.Equal(t, 2, set.Remove(NewCard(Hearts, Ace)).Len())
	require.Equal(t, DeckSize, FullDeck.Len())

	for i := 0; i < DeckSize; i++ {
		require.Equal(t, i, CardAt(i).Index())
	}
}

func TestHandRemove(t *testing.T) {
	hand := Hand{NewCard(Hearts, Ace), NewCard(Spades, Seven)}

	rest, ok := hand.Remove(NewCard(Hearts, Ace))
	require.True(t, ok)
	require.Equal(t, Hand{NewCard(Spades, Seven)}, rest)
	require.Len(t, hand, 2, "Remove should not mutate the receiver")

	_, ok = hand.Remove(NewCard(Clubs, King))
	require.False(t, ok)
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := Shuffle(NewDeck(), rng)

	t.Run("shuffle is a permutation", func(t *testing.T) {
		require.Len(t, deck, DeckSize)
		require.Equal(t, FullDeck, SetOf(deck...))
	})

	t.Run("3-2-3 packets starting left of dealer", func(t *testing.T) {
		dealer := Seat(2)
		hands := Deal(deck, dealer)

		require.Equal(t, Hand(deck[0:3]), hands[3][:3], "first packet goes to seat left of dealer")
		require.Equal(t, Hand(deck[3:6]), hands[0][:3])
		require.Equal(t, Hand(deck[12:14]), hands[3][3:5], "second round deals two cards")
		require.Equal(t, Hand(deck[20:23]), hands[3][5:8], "third round deals three cards")

		var union CardSet
		for _, h := range hands {
			require.Len(t, h, MaxHandSize)
			require.True(t, union&h.Set() == 0, "hands must not overlap")
			union = union.Union(h.Set())
		}
		require.Equal(t, FullDeck, union)
	})

	t.Run("same seed deals the same deck", func(t *testing.T) {
		a := Shuffle(NewDeck(), rand.New(rand.NewSource(42)))
		b := Shuffle(NewDeck(), rand.New(rand.NewSource(42)))
		require.Equal(t, a, b)
	})
}

func TestSeats(t *testing.T) {
	require.Equal(t, TeamA, Seat(0).Team())
	require.Equal(t, TeamB, Seat(1).Team())
	require.Equal(t, TeamA, Seat(2).Team())
	require.Equal(t, Seat(2), Seat(0).Partner())
	require.Equal(t, Seat(0), Seat(3).Next())
	require.Equal(t, [2]Seat{1, 3}, TeamB.Seats())
	require.Equal(t, TeamA, TeamB.Other())
}

func TestNextBidValue(t *testing.T) {
	v, ok := NextBidValue(0)
	require.True(t, ok)
	require.Equal(t, MinBid, v)

	v, _ = NextBidValue(120)
	require.Equal(t, 130, v)

	v, _ = NextBidValue(MaxBid)
	require.Equal(t, CapotBid, v)

	_, ok = NextBidValue(CapotBid)
	require.False(t, ok)

	require.True(t, ValidBidValue(250))
	require.False(t, ValidBidValue(85))
	require.False(t, ValidBidValue(170))
}
