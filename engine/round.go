package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pilotta/game"
	"pilotta/rules"
)

// NewRound shuffles and deals a round and opens the auction with the seat
// left of the dealer. Per-round state is reset; match scores are kept.
func NewRound(s State, rng *rand.Rand) (State, error) {
	if s.Phase != Dealing {
		return reject(s, fmt.Errorf("%w: cannot deal during %s", ErrWrongPhase, s.Phase))
	}
	next := s.Clone()
	if s.Config.MaxRounds > 0 && s.Round >= s.Config.MaxRounds {
		next.Phase = GameOver
		switch {
		case s.Scores[game.TeamA] > s.Scores[game.TeamB]:
			next.Winner = game.TeamA
		case s.Scores[game.TeamB] > s.Scores[game.TeamA]:
			next.Winner = game.TeamB
		}
		log.Info().Msgf("match stopped after %d rounds", s.Round)
		return next, nil
	}
	next.Round++
	next.Hands = game.Deal(game.Shuffle(game.NewDeck(), rng), next.Dealer)
	next.Turn = next.Dealer.Next()
	next.Phase = Bidding

	next.Contract = game.Contract{}
	next.HasContract = false
	next.Passes = 0
	next.Declarations = [game.NumSeats][]game.Declaration{}
	next.Tracking = [game.NumSeats]Tracking{}
	next.Banked = [game.NumTeams]int{}
	next.Belote = [game.NumTeams]rules.BeloteProgress{}
	next.Trick = game.Trick{}
	next.Tricks = nil
	next.TrickPoints = [game.NumTeams]int{}
	next.TricksWon = [game.NumTeams]int{}
	next.LastTrick = game.NoTeam
	next.EarlyEnd = false

	log.Debug().Msgf("round %d dealt by %s", next.Round, next.Dealer)
	return next, nil
}

// BeginPlay leaves the Declaring phase; the contract bidder leads trick 1.
func BeginPlay(s State) (State, error) {
	if s.Phase != Declaring {
		return reject(s, fmt.Errorf("%w: cannot start play during %s", ErrWrongPhase, s.Phase))
	}
	if !s.HasContract {
		return reject(s, fmt.Errorf("%w: declaring without a contract", ErrMalformedState))
	}
	next := s.Clone()
	next.Phase = Playing
	next.Turn = s.Contract.Bidder
	return next, nil
}
