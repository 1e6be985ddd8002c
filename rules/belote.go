package rules

import "pilotta/game"

// BeloteCall is what a play announces.
type BeloteCall int

const (
	NoCall BeloteCall = iota
	CallBelote
	CallRebelote
)

func (c BeloteCall) String() string {
	switch c {
	case CallBelote:
		return "belote"
	case CallRebelote:
		return "rebelote"
	default:
		return ""
	}
}

// BeloteProgress is one team's belote/rebelote state. Only a team whose
// player was dealt both trump King and Queen is eligible; the first of the
// pair played announces belote, the second announces rebelote and completes
// the 20 point award.
type BeloteProgress struct {
	Eligible  bool
	Announced bool
	Complete  bool
}

// NewBeloteProgress initialises both teams from the dealt hands.
func NewBeloteProgress(hands [game.NumSeats]game.Hand, trump game.Suit) [game.NumTeams]BeloteProgress {
	var progress [game.NumTeams]BeloteProgress
	for s, hand := range hands {
		if CheckBelote(hand, trump) {
			progress[game.Seat(s).Team()].Eligible = true
		}
	}
	return progress
}

// Record advances the state for card played by the team and returns the
// announcement it makes, if any.
func (b BeloteProgress) Record(c game.Card, trump game.Suit) (BeloteProgress, BeloteCall) {
	if !b.Eligible || b.Complete || c.Suit != trump || (c.Rank != game.King && c.Rank != game.Queen) {
		return b, NoCall
	}
	if !b.Announced {
		b.Announced = true
		return b, CallBelote
	}
	b.Complete = true
	return b, CallRebelote
}

// Points is the belote award banked so far.
func (b BeloteProgress) Points() int {
	if b.Complete {
		return BelotePoints
	}
	return 0
}

// Pending reports whether the award can still be completed.
func (b BeloteProgress) Pending() bool {
	return b.Eligible && !b.Complete
}
