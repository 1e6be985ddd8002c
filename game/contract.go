package game

import "fmt"

// Bid bounds. Ordinary bids run MinBid..MaxBid in BidStep; CapotBid is the
// all-tricks contract.
const (
	MinBid   = 80
	MaxBid   = 160
	BidStep  = 10
	CapotBid = 250
)

// ValidBidValue reports whether v is an allowed contract value.
func ValidBidValue(v int) bool {
	if v == CapotBid {
		return true
	}
	return v >= MinBid && v <= MaxBid && (v-MinBid)%BidStep == 0
}

// NextBidValue returns the lowest value that outbids current, or false when
// nothing can (current is already capot). current 0 means no contract.
func NextBidValue(current int) (int, bool) {
	switch {
	case current == 0:
		return MinBid, true
	case current >= CapotBid:
		return 0, false
	case current >= MaxBid:
		return CapotBid, true
	default:
		return current + BidStep, true
	}
}

// Contract is the winning bid of a round.
type Contract struct {
	Bidder    Seat
	Value     int
	Trump     Suit
	Doubled   bool
	Redoubled bool
}

func (c Contract) Team() Team { return c.Bidder.Team() }

// Multiplier is 1 plain, 2 doubled, 4 redoubled.
func (c Contract) Multiplier() int {
	switch {
	case c.Redoubled:
		return 4
	case c.Doubled:
		return 2
	default:
		return 1
	}
}

func (c Contract) String() string {
	s := fmt.Sprintf("%d%s by %s", c.Value, c.Trump, c.Bidder)
	if c.Redoubled {
		return s + " (redoubled)"
	}
	if c.Doubled {
		return s + " (doubled)"
	}
	return s
}

// BidKind distinguishes the auction actions.
type BidKind int

const (
	BidPass BidKind = iota
	BidRaise
	BidDouble
	BidRedouble
)

func (k BidKind) String() string {
	switch k {
	case BidPass:
		return "pass"
	case BidRaise:
		return "bid"
	case BidDouble:
		return "double"
	case BidRedouble:
		return "redouble"
	default:
		return "?"
	}
}

// Bid is one auction action. Value and Trump only matter for BidRaise.
type Bid struct {
	Kind  BidKind
	Value int
	Trump Suit
}

func Pass() Bid { return Bid{Kind: BidPass} }
func Raise(value int, trump Suit) Bid { return Bid{Kind: BidRaise, Value: value, Trump: trump} }
func Double() Bid { return Bid{Kind: BidDouble} }
func Redouble() Bid { return Bid{Kind: BidRedouble} }

func (b Bid) String() string {
	if b.Kind == BidRaise {
		return fmt.Sprintf("bid %d%s", b.Value, b.Trump)
	}
	return b.Kind.String()
}
