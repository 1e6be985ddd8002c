package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pilotta/game"
	"pilotta/rules"
)

// ApplyBid resolves a pass or raise from the seat in turn. Doubles and
// redoubles are forwarded to ApplyDouble and ApplyRedouble.
func ApplyBid(s State, seat game.Seat, bid game.Bid) (State, error) {
	switch bid.Kind {
	case game.BidDouble:
		return ApplyDouble(s, seat)
	case game.BidRedouble:
		return ApplyRedouble(s, seat)
	}
	if s.Phase != Bidding {
		return reject(s, fmt.Errorf("%w: cannot bid during %s", ErrWrongPhase, s.Phase))
	}
	if seat != s.Turn {
		return reject(s, fmt.Errorf("%w: %s bid but %s is to act", ErrOutOfTurn, seat, s.Turn))
	}

	next := s.Clone()
	switch bid.Kind {
	case game.BidPass:
		next.Passes++
	case game.BidRaise:
		if !game.ValidBidValue(bid.Value) {
			return reject(s, fmt.Errorf("%w: %d is not a contract value", ErrInvalidBid, bid.Value))
		}
		if int(bid.Trump) >= game.NumSuits {
			return reject(s, fmt.Errorf("%w: unknown trump suit", ErrInvalidBid))
		}
		if s.HasContract && bid.Value <= s.Contract.Value {
			return reject(s, fmt.Errorf("%w: %d does not beat %d", ErrInvalidBid, bid.Value, s.Contract.Value))
		}
		next.Contract = game.Contract{Bidder: seat, Value: bid.Value, Trump: bid.Trump}
		next.HasContract = true
		next.Passes = 0
	default:
		return reject(s, fmt.Errorf("%w: unknown bid kind %d", ErrInvalidBid, bid.Kind))
	}
	next.record(BidAction(seat, bid))
	next.Turn = seat.Next()

	switch {
	case !next.HasContract && next.Passes == game.NumSeats:
		log.Info().Msgf("round %d: four passes, redealing", next.Round)
		next.Phase = Dealing
		next.Dealer = next.Dealer.Next()
		next.Turn = game.NoSeat
		next.Redeals++
	case next.HasContract && next.Passes == game.NumSeats-1:
		log.Info().Msgf("round %d: contract %s", next.Round, next.Contract)
		next = beginDeclaring(next)
	}
	return next, nil
}

// ApplyDouble doubles the standing contract. Only the defending team may
// double, once, and it does not consume the turn.
func ApplyDouble(s State, seat game.Seat) (State, error) {
	if s.Phase != Bidding {
		return reject(s, fmt.Errorf("%w: cannot double during %s", ErrWrongPhase, s.Phase))
	}
	switch {
	case !seat.Valid():
		return reject(s, fmt.Errorf("%w: invalid seat %d", ErrMalformedState, seat))
	case !s.HasContract:
		return reject(s, fmt.Errorf("%w: no contract to double", ErrInvalidDoubleRedouble))
	case seat.Team() == s.Contract.Team():
		return reject(s, fmt.Errorf("%w: %s cannot double its own team", ErrInvalidDoubleRedouble, seat))
	case s.Contract.Doubled:
		return reject(s, fmt.Errorf("%w: contract already doubled", ErrInvalidDoubleRedouble))
	}
	next := s.Clone()
	next.Contract.Doubled = true
	next.record(BidAction(seat, game.Double()))
	return next, nil
}

// ApplyRedouble redoubles a doubled contract on behalf of the contracting
// team. It does not consume the turn.
func ApplyRedouble(s State, seat game.Seat) (State, error) {
	if s.Phase != Bidding {
		return reject(s, fmt.Errorf("%w: cannot redouble during %s", ErrWrongPhase, s.Phase))
	}
	switch {
	case !seat.Valid():
		return reject(s, fmt.Errorf("%w: invalid seat %d", ErrMalformedState, seat))
	case !s.HasContract || !s.Contract.Doubled:
		return reject(s, fmt.Errorf("%w: contract is not doubled", ErrInvalidDoubleRedouble))
	case seat.Team() != s.Contract.Team():
		return reject(s, fmt.Errorf("%w: %s is not on the contracting team", ErrInvalidDoubleRedouble, seat))
	case s.Contract.Redoubled:
		return reject(s, fmt.Errorf("%w: contract already redoubled", ErrInvalidDoubleRedouble))
	}
	next := s.Clone()
	next.Contract.Redoubled = true
	next.record(BidAction(seat, game.Redouble()))
	return next, nil
}

// beginDeclaring fixes the declarations and belote eligibility of every
// dealt hand once the contract is known.
func beginDeclaring(s State) State {
	s.Phase = Declaring
	s.Turn = game.NoSeat
	for seat := game.Seat(0); seat < game.NumSeats; seat++ {
		s.Declarations[seat] = rules.FindDeclarations(s.Hands[seat], seat)
	}
	s.Belote = rules.NewBeloteProgress(s.Hands, s.Contract.Trump)
	return s
}
