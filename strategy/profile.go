package strategy

import "pilotta/rules"

// Adaptive aggressiveness bounds and steps.
const (
	MinAggressiveness = 0.5
	MaxAggressiveness = 1.5
	madeStep          = 0.05
	failedStep        = 0.1
)

// Profile is the learned state of an adaptive seat. The zero value is not
// ready for use; call NewProfile.
type Profile struct {
	Aggressiveness float64
	Made           int
	Failed         int
}

func NewProfile() Profile {
	return Profile{Aggressiveness: 1}
}

// Learn returns the profile updated with a round the profile's team
// contracted. Rounds contracted by opponents leave it unchanged.
func (p Profile) Learn(rs rules.RoundScore, contracted bool) Profile {
	if !contracted {
		return p
	}
	if rs.ContractMade {
		p.Made++
		p.Aggressiveness += madeStep
	} else {
		p.Failed++
		p.Aggressiveness -= failedStep
	}
	p.Aggressiveness = clamp(p.Aggressiveness, MinAggressiveness, MaxAggressiveness)
	return p
}
