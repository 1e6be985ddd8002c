package engine

import (
	"fmt"

	"pilotta/game"
)

type ActionKind int

const (
	ActBid ActionKind = iota
	ActPlay
	ActDeclare
	ActShow
)

func (k ActionKind) String() string {
	switch k {
	case ActBid:
		return "bid"
	case ActPlay:
		return "play"
	case ActDeclare:
		return "declare"
	case ActShow:
		return "show"
	default:
		return "?"
	}
}

// Action is one request from a seat. Bid is used by ActBid, Card by ActPlay.
type Action struct {
	Kind ActionKind
	Seat game.Seat
	Bid  game.Bid
	Card game.Card
}

func BidAction(seat game.Seat, bid game.Bid) Action {
	return Action{Kind: ActBid, Seat: seat, Bid: bid}
}

func PlayAction(seat game.Seat, card game.Card) Action {
	return Action{Kind: ActPlay, Seat: seat, Card: card}
}

func DeclareAction(seat game.Seat) Action {
	return Action{Kind: ActDeclare, Seat: seat}
}

func ShowAction(seat game.Seat) Action {
	return Action{Kind: ActShow, Seat: seat}
}

func (a Action) String() string {
	switch a.Kind {
	case ActBid:
		return fmt.Sprintf("%s bids %s", a.Seat, a.Bid)
	case ActPlay:
		return fmt.Sprintf("%s plays %s", a.Seat, a.Card)
	default:
		return fmt.Sprintf("%s %ss", a.Seat, a.Kind)
	}
}

// Apply resolves one action against s. A rejected action returns s
// unchanged together with the reason.
func Apply(s State, a Action) (State, error) {
	switch a.Kind {
	case ActBid:
		return ApplyBid(s, a.Seat, a.Bid)
	case ActPlay:
		return ApplyPlay(s, a.Seat, a.Card)
	case ActDeclare:
		return ApplyDeclare(s, a.Seat)
	case ActShow:
		return ApplyShow(s, a.Seat)
	default:
		return reject(s, fmt.Errorf("%w: unknown action kind %d", ErrMalformedState, a.Kind))
	}
}

func (s *State) record(a Action) {
	s.Log = append(s.Log, a)
}
