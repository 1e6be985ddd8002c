package engine

import (
	"github.com/google/uuid"

	"pilotta/game"
	"pilotta/meta"
	"pilotta/rules"
)

// Phase is the state machine position of a match.
type Phase int

const (
	Dealing Phase = iota
	Bidding
	Declaring
	Playing
	Scoring
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Dealing:
		return "dealing"
	case Bidding:
		return "bidding"
	case Declaring:
		return "declaring"
	case Playing:
		return "playing"
	case Scoring:
		return "scoring"
	case GameOver:
		return "game over"
	default:
		return "?"
	}
}

type Config struct {
	TargetScore int
	// MaxRounds ends the match after this many dealt rounds when positive.
	MaxRounds int
	// Strict panics on rejected actions instead of returning an error, and
	// checks card conservation when a round is scored.
	Strict bool
}

func DefaultConfig() Config {
	return Config{TargetScore: meta.TARGET_SCORE}
}

// Tracking is one seat's declaration record for the round.
type Tracking struct {
	HasDeclared bool
	HasShown    bool
	CanShow     bool
}

// State is an immutable snapshot of a match. Every Apply function returns a
// new State and leaves its input untouched.
type State struct {
	ID     uuid.UUID
	Config Config
	Phase  Phase
	Round  int
	Dealer game.Seat
	Turn   game.Seat
	Hands  [game.NumSeats]game.Hand

	Contract    game.Contract
	HasContract bool
	Passes      int
	Redeals     int

	Declarations [game.NumSeats][]game.Declaration
	Tracking     [game.NumSeats]Tracking
	Banked       [game.NumTeams]int
	Belote       [game.NumTeams]rules.BeloteProgress

	Trick       game.Trick
	Tricks      []game.CompletedTrick
	TrickPoints [game.NumTeams]int
	TricksWon   [game.NumTeams]int
	LastTrick   game.Team
	EarlyEnd    bool

	Scores  [game.NumTeams]int
	History []rules.RoundScore
	Winner  game.Team
	Log     []Action
}

// NewMatch returns a match waiting for its first deal. Seat 0 bids first.
func NewMatch(config Config) State {
	if config.TargetScore <= 0 {
		config.TargetScore = meta.TARGET_SCORE
	}
	return State{
		ID:        uuid.New(),
		Config:    config,
		Phase:     Dealing,
		Dealer:    game.NumSeats - 1,
		Turn:      game.NoSeat,
		LastTrick: game.NoTeam,
		Winner:    game.NoTeam,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	for i := range s.Hands {
		c.Hands[i] = s.Hands[i].Clone()
	}
	for i := range s.Declarations {
		c.Declarations[i] = append([]game.Declaration(nil), s.Declarations[i]...)
	}
	c.Tricks = append([]game.CompletedTrick(nil), s.Tricks...)
	c.History = append([]rules.RoundScore(nil), s.History...)
	c.Log = append([]Action(nil), s.Log...)
	return c
}

// ActiveSeat returns the seat expected to act, if any.
func ActiveSeat(s State) (game.Seat, bool) {
	if s.Phase == Bidding || s.Phase == Playing {
		return s.Turn, true
	}
	return game.NoSeat, false
}

// CurrentContract returns the contract standing in the auction or round.
func (s State) CurrentContract() *game.Contract {
	if !s.HasContract {
		return nil
	}
	c := s.Contract
	return &c
}

// Played returns every card played this round, including the open trick.
func (s State) Played() game.CardSet {
	set := game.SetOf(s.Trick.Cards()...)
	for _, t := range s.Tricks {
		set = set.Union(game.SetOf(t.Cards()...))
	}
	return set
}

// RoundCards returns all cards of the round: hands, open trick and sealed
// tricks. A well-formed round always holds the full deck.
func (s State) RoundCards() []game.Card {
	var cards []game.Card
	for _, h := range s.Hands {
		cards = append(cards, h...)
	}
	cards = append(cards, s.Trick.Cards()...)
	for _, t := range s.Tricks {
		cards = append(cards, t.Cards()...)
	}
	return cards
}

// Bonus is each team's banked declarations plus completed belote.
func (s State) Bonus() [game.NumTeams]int {
	var bonus [game.NumTeams]int
	for t := range bonus {
		bonus[t] = s.Banked[t] + s.Belote[t].Points()
	}
	return bonus
}
