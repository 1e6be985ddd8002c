package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pilotta/game"
	"pilotta/rules"
)

// Declarations are announced during the first trick and shown during the
// second, each on the seat's own turn before it plays.
const (
	declareTrick  = 0
	showTrick     = 1
	fallbackTrick = 2
)

// ApplyDeclare announces the seat's declarations during trick 1.
func ApplyDeclare(s State, seat game.Seat) (State, error) {
	if s.Phase != Playing {
		return reject(s, fmt.Errorf("%w: cannot declare during %s", ErrWrongPhase, s.Phase))
	}
	if seat != s.Turn {
		return reject(s, fmt.Errorf("%w: %s declared but %s is to act", ErrOutOfTurn, seat, s.Turn))
	}
	switch {
	case len(s.Tricks) != declareTrick:
		return reject(s, fmt.Errorf("%w: declarations close after the first trick", ErrInvalidDeclaration))
	case s.Tracking[seat].HasDeclared:
		return reject(s, fmt.Errorf("%w: %s already declared", ErrInvalidDeclaration, seat))
	case len(s.Declarations[seat]) == 0:
		return reject(s, fmt.Errorf("%w: %s holds nothing to declare", ErrInvalidDeclaration, seat))
	}
	next := s.Clone()
	next.Tracking[seat].HasDeclared = true
	next.record(DeclareAction(seat))
	return next, nil
}

// ApplyShow shows and banks the seat's declarations during trick 2. Only
// seats granted the right after trick 1 may show.
func ApplyShow(s State, seat game.Seat) (State, error) {
	if s.Phase != Playing {
		return reject(s, fmt.Errorf("%w: cannot show during %s", ErrWrongPhase, s.Phase))
	}
	if seat != s.Turn {
		return reject(s, fmt.Errorf("%w: %s showed but %s is to act", ErrOutOfTurn, seat, s.Turn))
	}
	switch {
	case len(s.Tricks) != showTrick:
		return reject(s, fmt.Errorf("%w: declarations are shown during the second trick", ErrInvalidDeclaration))
	case !s.Tracking[seat].CanShow:
		return reject(s, fmt.Errorf("%w: %s may not show", ErrInvalidDeclaration, seat))
	case s.Tracking[seat].HasShown:
		return reject(s, fmt.Errorf("%w: %s already showed", ErrInvalidDeclaration, seat))
	}
	next := s.Clone()
	next = bank(next, seat)
	next.record(ShowAction(seat))
	return next, nil
}

func bank(s State, seat game.Seat) State {
	s.Tracking[seat].HasShown = true
	s.Banked[seat.Team()] += rules.DeclarationPoints(s.Declarations[seat])
	return s
}

// declaredBy returns the declarations of seats that announced them.
func declaredBy(s State) [game.NumSeats][]game.Declaration {
	var declared [game.NumSeats][]game.Declaration
	for seat := range declared {
		if s.Tracking[seat].HasDeclared {
			declared[seat] = s.Declarations[seat]
		}
	}
	return declared
}

// grantShowing runs after trick 1: declared seats of the team with the
// strictly better declaration may show. A tie grants nobody.
func grantShowing(s State) State {
	team, ok := rules.DeclarationWinner(declaredBy(s), s.Contract.Trump)
	if !ok {
		return s
	}
	for _, seat := range team.Seats() {
		if s.Tracking[seat].HasDeclared {
			s.Tracking[seat].CanShow = true
		}
	}
	return s
}

// showFallback runs as trick 3 opens: when the entitled team showed nothing,
// the opposing team's declared seats show and bank instead.
func showFallback(s State) State {
	team, ok := rules.DeclarationWinner(declaredBy(s), s.Contract.Trump)
	if !ok {
		return s
	}
	for _, seat := range team.Seats() {
		if s.Tracking[seat].HasShown {
			return s
		}
	}
	for _, seat := range team.Other().Seats() {
		if s.Tracking[seat].HasDeclared && !s.Tracking[seat].HasShown {
			log.Debug().Msgf("round %d: %s shows by fallback", s.Round, seat)
			s = bank(s, seat)
		}
	}
	return s
}
