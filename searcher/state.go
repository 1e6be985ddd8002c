package searcher

import (
	"pilotta/game"
	"pilotta/rules"
)

// state is a fully observable round used inside one determinization. It
// applies plays exactly as the round does: the card leaves the hand, joins
// the trick, and a fourth card seals the trick with the winner to lead.
type state struct {
	hands    [game.NumSeats]game.CardSet
	trick    game.Trick
	turn     game.Seat
	contract game.Contract
	tricks   int
	points   [game.NumTeams]int
	won      [game.NumTeams]int
	bonus    [game.NumTeams]int
	last     game.Team
}

func newState(info game.InformationSet, hands [game.NumSeats]game.CardSet) state {
	return state{
		hands:    hands,
		trick:    info.Trick,
		turn:     info.Seat,
		contract: info.Contract,
		tricks:   info.TrickNumber,
		points:   info.TrickPoints,
		won:      info.TricksWon,
		bonus:    info.Bonus,
		last:     game.NoTeam,
	}
}

func (s state) terminal() bool {
	return s.tricks >= game.NumTricks
}

func (s state) legalMoves() []game.Card {
	if s.terminal() {
		return nil
	}
	hand := game.Hand(s.hands[s.turn].Cards())
	return rules.LegalPlays(hand, s.trick, s.contract.Trump)
}

func (s state) play(c game.Card) state {
	s.hands[s.turn] = s.hands[s.turn].Remove(c)
	s.trick = s.trick.Add(s.turn, c)
	if !s.trick.Full() {
		s.turn = s.turn.Next()
		return s
	}

	sealed := rules.Seal(s.trick, s.contract.Trump)
	team := sealed.Winner.Team()
	s.points[team] += sealed.Points
	s.won[team]++
	s.tricks++
	s.last = team
	s.turn = sealed.Winner
	s.trick = game.Trick{}
	return s
}

// evaluate returns the reward for team A. Finished rounds are settled with
// the round scorer; cut-off rounds compare points captured so far.
func (s state) evaluate() float64 {
	if s.terminal() {
		rs := rules.ScoreRound(rules.RoundInput{
			Contract:     s.contract,
			TrickPoints:  s.points,
			TricksWon:    s.won,
			Declarations: s.bonus,
			LastTrick:    s.last,
		})
		return reward(float64(rs.Raw[game.TeamA] - rs.Raw[game.TeamB]))
	}
	a := s.points[game.TeamA] + s.bonus[game.TeamA]
	b := s.points[game.TeamB] + s.bonus[game.TeamB]
	return reward(float64(a - b))
}
