package engine

import "pilotta/game"

// InformationSet projects s onto what seat may observe when it plays.
func InformationSet(s State, seat game.Seat) game.InformationSet {
	leader, ok := s.Trick.Leader()
	if !ok {
		leader = s.Turn
	}
	return game.InformationSet{
		Seat:        seat,
		Hand:        s.Hands[seat].Clone(),
		Played:      s.Played(),
		Trick:       s.Trick,
		TrickNumber: len(s.Tricks),
		Leader:      leader,
		Contract:    s.Contract,
		TrickPoints: s.TrickPoints,
		TricksWon:   s.TricksWon,
		Bonus:       s.Bonus(),
		Scores:      s.Scores,
		TargetScore: s.Config.TargetScore,
	}
}

// BidView is what a seat may observe during the auction.
type BidView struct {
	Seat        game.Seat
	Hand        game.Hand
	Contract    *game.Contract
	Scores      [game.NumTeams]int
	TargetScore int
}

func BidViewFor(s State, seat game.Seat) BidView {
	return BidView{
		Seat:        seat,
		Hand:        s.Hands[seat].Clone(),
		Contract:    s.CurrentContract(),
		Scores:      s.Scores,
		TargetScore: s.Config.TargetScore,
	}
}
