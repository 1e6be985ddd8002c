package strategy

import (
	"fmt"
	"strings"

	"pilotta/game"
)

// Personality selects the bidding temperament of an automated seat.
type Personality int

const (
	Balanced Personality = iota
	Conservative
	Aggressive
	Adaptive
)

func (p Personality) String() string {
	switch p {
	case Balanced:
		return "balanced"
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("personality(%d)", int(p))
	}
}

// ParsePersonality maps a personality name to its value.
func ParsePersonality(name string) (Personality, error) {
	for _, p := range []Personality{Balanced, Conservative, Aggressive, Adaptive} {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return Balanced, fmt.Errorf("unknown personality %q", name)
}

// Behavior holds the numeric parameters a personality bids with.
type Behavior struct {
	// BidScale multiplies the raw suggested bid before rounding.
	BidScale float64
	// BidShift is added to the suggested bid after scaling.
	BidShift int
	// ConfidenceScale multiplies the hand confidence.
	ConfidenceScale float64
	// Threshold is the confidence needed to bid at all.
	Threshold float64
	// Stretch allows outbidding from a secondary suit under high confidence.
	Stretch bool
}

const (
	aggressiveThreshold = 0.4
	defaultThreshold    = 0.6
	highConfidence      = 0.8
)

// BehaviorOf returns the parameters for p. aggressiveness is the learned
// factor of an adaptive seat and is ignored by the other personalities.
func BehaviorOf(p Personality, aggressiveness float64) Behavior {
	switch p {
	case Conservative:
		return Behavior{BidScale: 1, BidShift: -game.BidStep, ConfidenceScale: 0.8, Threshold: defaultThreshold}
	case Aggressive:
		return Behavior{BidScale: 1, BidShift: game.BidStep, ConfidenceScale: 1.2, Threshold: aggressiveThreshold, Stretch: true}
	case Adaptive:
		if aggressiveness <= 0 {
			aggressiveness = 1
		}
		return Behavior{BidScale: aggressiveness, ConfidenceScale: aggressiveness, Threshold: defaultThreshold}
	default:
		return Behavior{BidScale: 1, ConfidenceScale: 1, Threshold: defaultThreshold}
	}
}

// Context is the match situation a bid is made in.
type Context struct {
	Seat        game.Seat
	Scores      [game.NumTeams]int
	TargetScore int
	// Aggressiveness is the adaptive factor; zero means neutral.
	Aggressiveness float64
}

const (
	scoreGap   = 50
	nearTarget = 30
)

// pressure is -1 when the seat's team trails, +1 when it leads comfortably
// or is close to winning, 0 otherwise.
func (c Context) pressure() int {
	own := c.Scores[c.Seat.Team()]
	opp := c.Scores[c.Seat.Team().Other()]
	switch {
	case opp-own >= scoreGap:
		return -1
	case own-opp >= scoreGap:
		return 1
	case c.TargetScore > 0 && own >= c.TargetScore-nearTarget:
		return 1
	default:
		return 0
	}
}

// thresholdScale lowers the bidding threshold when behind and raises it when
// ahead.
func (c Context) thresholdScale() float64 {
	switch c.pressure() {
	case -1:
		return 0.85
	case 1:
		return 1.15
	default:
		return 1
	}
}

func (c Context) bidShift() int {
	return -c.pressure() * game.BidStep
}
