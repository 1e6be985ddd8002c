package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pilotta/game"
	"pilotta/rules"
)

// LegalPlays returns the cards seat may play now, or nil when it is not the
// seat's turn to play.
func LegalPlays(s State, seat game.Seat) []game.Card {
	if s.Phase != Playing || seat != s.Turn {
		return nil
	}
	return rules.LegalPlays(s.Hands[seat], s.Trick, s.Contract.Trump)
}

// ApplyPlay plays card for seat. The fourth card seals the trick, after
// which showing rights, the showing fallback and early termination are
// resolved.
func ApplyPlay(s State, seat game.Seat, card game.Card) (State, error) {
	if s.Phase != Playing {
		return reject(s, fmt.Errorf("%w: cannot play during %s", ErrWrongPhase, s.Phase))
	}
	if seat != s.Turn {
		return reject(s, fmt.Errorf("%w: %s played but %s is to act", ErrOutOfTurn, seat, s.Turn))
	}
	if !rules.IsLegal(card, s.Hands[seat], s.Trick, s.Contract.Trump) {
		return reject(s, fmt.Errorf("%w: %s may not play %s", ErrIllegalMove, seat, card))
	}

	next := s.Clone()
	next.Hands[seat], _ = next.Hands[seat].Remove(card)
	next.Trick = next.Trick.Add(seat, card)
	next.record(PlayAction(seat, card))

	trump := s.Contract.Trump
	team := seat.Team()
	var call rules.BeloteCall
	next.Belote[team], call = next.Belote[team].Record(card, trump)
	if call != rules.NoCall {
		log.Debug().Msgf("round %d: %s announces %s", next.Round, seat, call)
	}

	if !next.Trick.Full() {
		next.Turn = seat.Next()
		return next, nil
	}
	return sealTrick(next), nil
}

func sealTrick(s State) State {
	sealed := rules.Seal(s.Trick, s.Contract.Trump)
	team := sealed.Winner.Team()
	s.Tricks = append(s.Tricks, sealed)
	s.TrickPoints[team] += sealed.Points
	s.TricksWon[team]++
	s.LastTrick = team
	s.Trick = game.Trick{}
	s.Turn = sealed.Winner

	switch len(s.Tricks) {
	case showTrick:
		s = grantShowing(s)
	case fallbackTrick:
		s = showFallback(s)
	}

	if len(s.Tricks) == game.NumTricks {
		s.Phase = Scoring
		s.Turn = game.NoSeat
		return s
	}
	return checkEarlyEnd(s)
}

// checkEarlyEnd ends the round once its outcome is decided: the contract can
// no longer be made, or one team has won every trick so far and is certain
// to win the rest.
func checkEarlyEnd(s State) State {
	played := len(s.Tricks)
	if played < rules.EarlyCheckFrom {
		return s
	}
	taker := s.Contract.Team()
	defender := taker.Other()

	potential := s.TrickPoints[taker] + s.Banked[taker] + s.Belote[taker].Points()
	if s.Belote[taker].Pending() {
		potential += rules.BelotePoints
	}
	if rules.ContractUnreachable(potential, played, s.Contract.Value) {
		log.Info().Msgf("round %d: contract %s can no longer be made after %d tricks", s.Round, s.Contract, played)
		return awardRemaining(s, defender, false)
	}

	for _, team := range []game.Team{game.TeamA, game.TeamB} {
		if s.TricksWon[team] == played && rules.SweepLocked(s.Hands, s.Contract.Trump, team) {
			log.Info().Msgf("round %d: team %s is certain to take every trick", s.Round, team)
			return awardRemaining(s, team, true)
		}
	}
	return s
}

// awardRemaining ends the round early. The card points still in hand and the
// last-trick bonus go to team; a sweep also credits the remaining tricks so
// the round scores as capot. Belote that is still pending will be completed
// by its holder, so it is awarded.
func awardRemaining(s State, team game.Team, sweep bool) State {
	remaining := 0
	for _, h := range s.Hands {
		remaining += rules.CardPoints(h, s.Contract.Trump)
	}
	s.TrickPoints[team] += remaining
	if sweep {
		s.TricksWon[team] += game.NumTricks - len(s.Tricks)
	}
	for t := range s.Belote {
		if s.Belote[t].Pending() {
			s.Belote[t].Complete = true
		}
	}
	s.LastTrick = team
	s.EarlyEnd = true
	s.Phase = Scoring
	s.Turn = game.NoSeat
	return s
}
