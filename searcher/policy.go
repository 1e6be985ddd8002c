package searcher

import "math"

// RewardScale is the score difference at which the sigmoid reward reaches
// about 0.73.
const RewardScale = 40.0

type uct struct {
	numerator float64
}

// newUCT precomputes c^2*ln(N) for a parent with N visits.
func newUCT(exploration float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: exploration * exploration * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + c*sqrt(ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// reward maps team A's score difference to [0, 1].
func reward(diff float64) float64 {
	return 1 / (1 + math.Exp(-diff/RewardScale))
}
