package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pilotta/game"
	"pilotta/rules"
)

// ComputeRoundScore settles the round held in s. It panics when s is not a
// finished round: eight sealed tricks or an early end.
func ComputeRoundScore(s State) rules.RoundScore {
	if s.Phase != Scoring || (!s.EarlyEnd && len(s.Tricks) != game.NumTricks) {
		panic(fmt.Errorf("%w: scoring %s round with %d tricks", ErrMalformedState, s.Phase, len(s.Tricks)))
	}
	if s.Config.Strict {
		checkConservation(s)
	}
	var belote [game.NumTeams]int
	for t := range belote {
		belote[t] = s.Belote[t].Points()
	}
	rs := rules.ScoreRound(rules.RoundInput{
		Contract:     s.Contract,
		TrickPoints:  s.TrickPoints,
		TricksWon:    s.TricksWon,
		Declarations: s.Banked,
		Belote:       belote,
		LastTrick:    s.LastTrick,
	})
	rs.EarlyEnd = s.EarlyEnd
	return rs
}

// checkConservation panics unless the round still holds the whole deck and
// its trick points add up to every card point.
func checkConservation(s State) {
	cards := s.RoundCards()
	if len(cards) != game.DeckSize || game.SetOf(cards...) != game.FullDeck {
		panic(fmt.Errorf("%w: round holds %d cards", ErrMalformedState, len(cards)))
	}
	if points := s.TrickPoints[game.TeamA] + s.TrickPoints[game.TeamB]; points != rules.TotalCardPoints {
		panic(fmt.Errorf("%w: tricks hold %d card points", ErrMalformedState, points))
	}
}

// FinishRound banks the round score and either ends the match or returns to
// Dealing with the dealer rotated. A match ends once either team reaches the
// target score; the higher score wins and level scores end without a winner.
func FinishRound(s State) (State, rules.RoundScore, error) {
	if s.Phase != Scoring {
		next, err := reject(s, fmt.Errorf("%w: cannot score during %s", ErrWrongPhase, s.Phase))
		return next, rules.RoundScore{}, err
	}
	rs := ComputeRoundScore(s)
	if rs.RoundingTie {
		log.Warn().Msgf("round %d: rounding tie resolved for the contracting team", s.Round)
	}

	next := s.Clone()
	next.History = append(next.History, rs)
	for t := range next.Scores {
		next.Scores[t] += rs.Final[t]
	}
	log.Info().Msgf("round %d: contract %s made=%t, round %d-%d, match %d-%d",
		s.Round, s.Contract, rs.ContractMade, rs.Final[game.TeamA], rs.Final[game.TeamB], next.Scores[game.TeamA], next.Scores[game.TeamB])

	a, b := next.Scores[game.TeamA], next.Scores[game.TeamB]
	reached := a >= s.Config.TargetScore || b >= s.Config.TargetScore
	capped := s.Config.MaxRounds > 0 && s.Round >= s.Config.MaxRounds
	switch {
	case (reached || capped) && a > b:
		next.Winner = game.TeamA
		next.Phase = GameOver
	case (reached || capped) && b > a:
		next.Winner = game.TeamB
		next.Phase = GameOver
	case reached || capped: // Level scores: drawn match
		next.Phase = GameOver
	default:
		next.Phase = Dealing
		next.Dealer = s.Dealer.Next()
	}
	next.Turn = game.NoSeat
	return next, rs, nil
}
