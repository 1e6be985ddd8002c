package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pilotta/game"
	"pilotta/rules"
)

// Player decides for one automated seat.
type Player interface {
	// ChooseBid returns a pass, a raise, or a double or redouble. A double or
	// redouble keeps the turn, so the seat is asked again afterwards.
	ChooseBid(ctx context.Context, view BidView) game.Bid
	ChooseCard(ctx context.Context, info game.InformationSet) game.Card
}

// Observer is implemented by players that learn from settled rounds.
type Observer interface {
	ObserveRound(seat game.Seat, rs rules.RoundScore)
}

// ErrAwaitingHuman is returned by Run when a human seat must act.
var ErrAwaitingHuman = errors.New("awaiting human action")

// Controller is the single writer of a match. It resolves one action at a
// time, asking automated seats for decisions and waiting for human seats
// (nil players) to Submit theirs.
type Controller struct {
	state   State
	players [game.NumSeats]Player
	rng     *rand.Rand
}

func NewController(config Config, players [game.NumSeats]Player, rng *rand.Rand) *Controller {
	return &Controller{
		state:   NewMatch(config),
		players: players,
		rng:     rng,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Submit applies an action from a human seat.
func (c *Controller) Submit(a Action) error {
	next, err := Apply(c.state, a)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Step performs one transition. It returns false when the match is over or
// a human seat has to act.
func (c *Controller) Step(ctx context.Context) (bool, error) {
	s := c.state
	switch s.Phase {
	case Dealing:
		next, err := NewRound(s, c.rng)
		if err != nil {
			return false, err
		}
		c.state = next
	case Bidding:
		p := c.players[s.Turn]
		if p == nil {
			return false, nil
		}
		c.state = c.bid(s, p.ChooseBid(ctx, BidViewFor(s, s.Turn)))
	case Declaring:
		next, err := BeginPlay(s)
		if err != nil {
			return false, err
		}
		c.state = next
	case Playing:
		p := c.players[s.Turn]
		if p == nil {
			return false, nil
		}
		c.state = c.play(ctx, c.announce(s), p)
	case Scoring:
		next, rs, err := FinishRound(s)
		if err != nil {
			return false, err
		}
		c.state = next
		c.notify(rs)
	case GameOver:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown phase %d", ErrMalformedState, s.Phase)
	}
	return true, nil
}

// Run steps until the match ends, a human seat must act, or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		progressed, err := c.Step(ctx)
		if err != nil {
			return err
		}
		if !progressed {
			if c.state.Phase == GameOver {
				log.Info().Msgf("match %s over after %d rounds, winner %s", c.state.ID, c.state.Round, c.state.Winner)
				return nil
			}
			return ErrAwaitingHuman
		}
	}
}

// bid applies an automated bid, passing instead when the player proposed
// something illegal.
func (c *Controller) bid(s State, bid game.Bid) State {
	next, err := ApplyBid(s, s.Turn, bid)
	if err == nil {
		return next
	}
	log.Warn().Err(err).Msgf("%s proposed %s, passing instead", s.Turn, bid)
	next, err = ApplyBid(s, s.Turn, game.Pass())
	if err != nil {
		panic(err)
	}
	return next
}

// announce declares during trick 1 and shows during trick 2 on behalf of an
// automated seat whenever it is entitled to.
func (c *Controller) announce(s State) State {
	seat := s.Turn
	t := s.Tracking[seat]
	if len(s.Tricks) == declareTrick && !t.HasDeclared && len(s.Declarations[seat]) > 0 {
		if next, err := ApplyDeclare(s, seat); err == nil {
			s = next
		}
	}
	if len(s.Tricks) == showTrick && t.CanShow && !t.HasShown {
		if next, err := ApplyShow(s, seat); err == nil {
			s = next
		}
	}
	return s
}

// play applies an automated card, falling back to the first legal card when
// the player proposed an illegal one.
func (c *Controller) play(ctx context.Context, s State, p Player) State {
	seat := s.Turn
	card := p.ChooseCard(ctx, InformationSet(s, seat))
	next, err := ApplyPlay(s, seat, card)
	if err == nil {
		return next
	}
	legal := LegalPlays(s, seat)
	if len(legal) == 0 {
		panic("No legal moves at all!")
	}
	log.Warn().Err(err).Msgf("%s proposed %s, playing %s instead", seat, card, legal[0])
	next, err = ApplyPlay(s, seat, legal[0])
	if err != nil {
		panic(err)
	}
	return next
}

func (c *Controller) notify(rs rules.RoundScore) {
	for seat, p := range c.players {
		if o, ok := p.(Observer); ok {
			o.ObserveRound(game.Seat(seat), rs)
		}
	}
}
