package rules

import "pilotta/game"

// EarlyCheckFrom is the number of sealed tricks before early termination is
// considered.
const EarlyCheckFrom = 4

// MaxRemaining is the theoretical maximum the contracting side can still add
// after played tricks: 33 per remaining trick plus the last-trick bonus.
func MaxRemaining(played int) int {
	if played >= game.NumTricks {
		return 0
	}
	return MaxTrickPoints*(game.NumTricks-played) + LastTrickBonus
}

// ContractUnreachable reports whether a contracting side holding current
// points can no longer reach value with played tricks sealed.
func ContractUnreachable(current, played, value int) bool {
	if played < EarlyCheckFrom || played >= game.NumTricks {
		return false
	}
	return current+MaxRemaining(played) < value
}

// SweepLocked reports whether team is certain to win every remaining trick:
// the opponents hold no trump and every card the team holds is trump, so
// whichever partner leads leads trump and cannot be beaten.
func SweepLocked(hands [game.NumSeats]game.Hand, trump game.Suit, team game.Team) bool {
	remaining := 0
	for s, hand := range hands {
		remaining += len(hand)
		if game.Seat(s).Team() == team {
			if len(hand.OfSuit(trump)) != len(hand) {
				return false
			}
		} else if hand.HasSuit(trump) {
			return false
		}
	}
	return remaining > 0
}
