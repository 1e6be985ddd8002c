package rules

import "pilotta/game"

// Round scoring constants.
const (
	CapotPoints     = 250
	LastTrickBonus  = 10
	MaxTrickPoints  = 33
	TotalCardPoints = 152
)

// RoundInput collects what scoring a round needs. TrickPoints are raw card
// points captured, without the last-trick bonus.
type RoundInput struct {
	Contract     game.Contract
	TrickPoints  [game.NumTeams]int
	TricksWon    [game.NumTeams]int
	Declarations [game.NumTeams]int
	Belote       [game.NumTeams]int
	LastTrick    game.Team
}

// RoundScore is the immutable settlement of one round.
type RoundScore struct {
	Contract     game.Contract
	TrickPoints  [game.NumTeams]int
	Declarations [game.NumTeams]int
	Belote       [game.NumTeams]int
	Capot        game.Team
	ContractMade bool
	Raw          [game.NumTeams]int
	Final        [game.NumTeams]int
	// RoundingTie is set when remainders and trick points were both equal
	// and the contracting team was chosen to round up.
	RoundingTie bool
	EarlyEnd    bool
}

// ScoreRound settles a round. It is a pure function of its input.
func ScoreRound(in RoundInput) RoundScore {
	rs := RoundScore{
		Contract:     in.Contract,
		Declarations: in.Declarations,
		Belote:       in.Belote,
		Capot:        game.NoTeam,
	}

	for _, t := range []game.Team{game.TeamA, game.TeamB} {
		if in.TricksWon[t] == game.NumTricks {
			rs.Capot = t
		}
	}
	if rs.Capot != game.NoTeam {
		rs.TrickPoints[rs.Capot] = CapotPoints
	} else {
		rs.TrickPoints = in.TrickPoints
		if in.LastTrick != game.NoTeam {
			rs.TrickPoints[in.LastTrick] += LastTrickBonus
		}
	}

	var total [game.NumTeams]int
	for t := range total {
		total[t] = rs.TrickPoints[t] + in.Declarations[t] + in.Belote[t]
	}

	taker := in.Contract.Team()
	defender := taker.Other()
	mult := in.Contract.Multiplier()
	rs.ContractMade = total[taker] >= in.Contract.Value
	if rs.ContractMade {
		for t := range total {
			total[t] *= mult
		}
	} else {
		total[defender] = in.Contract.Value*mult + total[taker] + total[defender]
		total[taker] = 0
	}
	rs.Raw = total

	rs.Final, rs.RoundingTie = round(total, rs.TrickPoints, taker)
	if !rs.ContractMade {
		rs.Final[taker] = 0
	}
	return rs
}

// round divides both totals by ten. The team with the strictly larger
// remainder rounds up; equal non-zero remainders go to the team with more
// trick points, then to taker.
func round(total, trickPoints [game.NumTeams]int, taker game.Team) ([game.NumTeams]int, bool) {
	var final [game.NumTeams]int
	for t := range total {
		final[t] = total[t] / 10
	}
	ra, rb := total[game.TeamA]%10, total[game.TeamB]%10

	up, tie := game.NoTeam, false
	switch {
	case ra > rb:
		up = game.TeamA
	case rb > ra:
		up = game.TeamB
	case ra == 0:
	case trickPoints[game.TeamA] > trickPoints[game.TeamB]:
		up = game.TeamA
	case trickPoints[game.TeamB] > trickPoints[game.TeamA]:
		up = game.TeamB
	default:
		up, tie = taker, true
	}
	if up != game.NoTeam {
		final[up]++
	}
	return final, tie
}
