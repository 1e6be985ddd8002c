package searcher

import (
	"golang.org/x/exp/rand"

	"pilotta/game"
)

// determinize deals the cards the searching seat cannot see to the other
// seats, each receiving as many cards as it still holds. The searching seat
// keeps its real hand.
func determinize(info game.InformationSet, rng *rand.Rand) [game.NumSeats]game.CardSet {
	unseen := info.Unseen().Cards()
	rng.Shuffle(len(unseen), func(i, j int) {
		unseen[i], unseen[j] = unseen[j], unseen[i]
	})

	var hands [game.NumSeats]game.CardSet
	hands[info.Seat] = info.Hand.Set()
	sizes := info.HandSizes()
	next := 0
	for s := game.Seat(0); s < game.NumSeats; s++ {
		if s == info.Seat {
			continue
		}
		for k := 0; k < sizes[s] && next < len(unseen); k++ {
			hands[s] = hands[s].Add(unseen[next])
			next++
		}
	}
	return hands
}
