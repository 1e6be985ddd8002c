// meta/meta.go
package meta

import "time"

// TARGET_SCORE ends the match once a team's cumulative score reaches it.
const TARGET_SCORE = 151

// SearchTimeBudget is the wall-clock budget of one search decision.
const SearchTimeBudget = 2000 * time.Millisecond

// Determinizations is the number of sampled deals per search decision.
const Determinizations = 10

// GO_ROUTINES defines the number of search workers used by self-play.
const GO_ROUTINES = 4

// MAX_ROUNDS bounds a self-play match.
const MAX_ROUNDS = 100
