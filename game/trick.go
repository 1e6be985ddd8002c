package game

// Play is one card laid by one seat.
type Play struct {
	Seat Seat
	Card Card
}

// Trick is the trick in progress: up to four plays in turn order. A fixed
// array keeps copies independent.
type Trick struct {
	Plays [NumSeats]Play
	Count int
}

// NewTrick returns a trick from plays. It panics on more than four plays.
func NewTrick(plays ...Play) Trick {
	if len(plays) > NumSeats {
		panic("trick holds at most four plays")
	}
	var t Trick
	for _, p := range plays {
		t = t.Add(p.Seat, p.Card)
	}
	return t
}

func (t Trick) Len() int { return t.Count }
func (t Trick) Empty() bool { return t.Count == 0 }
func (t Trick) Full() bool { return t.Count == NumSeats }

// Add returns the trick with one more play.
func (t Trick) Add(seat Seat, c Card) Trick {
	t.Plays[t.Count] = Play{Seat: seat, Card: c}
	t.Count++
	return t
}

// Leader returns the seat that led the trick.
func (t Trick) Leader() (Seat, bool) {
	if t.Count == 0 {
		return NoSeat, false
	}
	return t.Plays[0].Seat, true
}

// LeadSuit returns the suit of the first card played.
func (t Trick) LeadSuit() (Suit, bool) {
	if t.Count == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Played returns the plays made so far.
func (t Trick) Played() []Play {
	return t.Plays[:t.Count]
}

// Cards returns the cards played so far.
func (t Trick) Cards() []Card {
	cards := make([]Card, t.Count)
	for i := 0; i < t.Count; i++ {
		cards[i] = t.Plays[i].Card
	}
	return cards
}

// HasPlayed reports whether seat already played to this trick.
func (t Trick) HasPlayed(seat Seat) bool {
	for i := 0; i < t.Count; i++ {
		if t.Plays[i].Seat == seat {
			return true
		}
	}
	return false
}

// CompletedTrick is a sealed trick with its winner and card points.
type CompletedTrick struct {
	Plays  [NumSeats]Play
	Winner Seat
	Points int
}

// NumTricks is the number of tricks in a round.
const NumTricks = 8

func (t CompletedTrick) Cards() []Card {
	cards := make([]Card, NumSeats)
	for i, p := range t.Plays {
		cards[i] = p.Card
	}
	return cards
}
