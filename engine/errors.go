package engine

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// Rejection reasons. Apply functions wrap one of these, so callers can test
// with errors.Is.
var (
	ErrIllegalMove           = errors.New("illegal move")
	ErrInvalidBid            = errors.New("invalid bid")
	ErrOutOfTurn             = errors.New("out of turn")
	ErrInvalidDoubleRedouble = errors.New("invalid double or redouble")
	ErrMalformedState        = errors.New("malformed state")
	ErrWrongPhase            = errors.New("wrong phase")
	ErrInvalidDeclaration    = errors.New("invalid declaration")
)

// reject returns s unchanged with err, or panics in strict mode.
func reject(s State, err error) (State, error) {
	if s.Config.Strict {
		panic(err)
	}
	log.Debug().Err(err).Msg("rejected action")
	return s, err
}
