package game

import "fmt"

// Seat is a table position 0..3; play proceeds in increasing order.
type Seat int

const NumSeats = 4

// NoSeat marks an absent seat (no bidder, no holder).
const NoSeat Seat = -1

// Team is one of the two partnerships: TeamA holds seats 0 and 2, TeamB
// seats 1 and 3.
type Team int

const (
	TeamA Team = iota
	TeamB
)

const NumTeams = 2

// NoTeam marks an absent team (no winner yet, tie).
const NoTeam Team = -1

func (s Seat) Next() Seat { return (s + 1) % NumSeats }
func (s Seat) Partner() Seat { return (s + 2) % NumSeats }
func (s Seat) Team() Team { return Team(s % 2) }
func (s Seat) Valid() bool { return s >= 0 && s < NumSeats }

func (s Seat) String() string {
	if !s.Valid() {
		return "none"
	}
	return fmt.Sprintf("seat%d", int(s))
}

func (t Team) Other() Team { return 1 - t }

// Seats returns the two seats of the team.
func (t Team) Seats() [2]Seat {
	return [2]Seat{Seat(t), Seat(t) + 2}
}

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "none"
	}
}
