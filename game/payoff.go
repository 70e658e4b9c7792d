package game

import "fmt"

const (
	Reward     = 3 // mutual cooperation
	Punishment = 1 // mutual defection
	Temptation = 5 // defecting against a cooperator
	Sucker     = 0 // cooperating against a defector
)

// payoffs is indexed by [self][other].
var payoffs = [2][2][2]int{
	Cooperate: {
		Cooperate: {Reward, Reward},
		Defect:    {Sucker, Temptation},
	},
	Defect: {
		Cooperate: {Temptation, Sucker},
		Defect:    {Punishment, Punishment},
	},
}

// Score returns the points awarded to each side for one round.
// Both moves must be valid; anything else is a programming error.
func Score(self, other Move) (selfPoints, otherPoints int) {
	if !self.Valid() || !other.Valid() {
		panic(fmt.Sprintf("undefined payoff for moves %v,%v", self, other))
	}
	p := payoffs[self][other]
	return p[0], p[1]
}
