package strategy

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"dilemma/game"
	"dilemma/meta"

	"golang.org/x/exp/rand"
)

// Strategy is the decision policy of the computer-controlled player.
//
// Decide must not change the strategy's memory; only Observe does, once per
// resolved round, with the strategy's own move first.
type Strategy interface {
	Name() string
	Decide() game.Move
	Observe(self, opponent game.Move)
}

// Rand is the uniform source used by the randomized strategies.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced by EntropySeed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = EntropySeed()
	}
	return rand.New(rand.NewSource(seed))
}

// EntropySeed returns a non-zero seed from crypto/rand, or from the clock
// if that fails. The x/exp global source is seeded with a constant, so it
// cannot be used here.
func EntropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed
		}
	}
	return uint64(time.Now().UnixNano()) | 1
}

// Params holds the probabilities used by Random, noisy and generous Tit for Tat.
type Params struct {
	Coin        float64 // P(cooperate) for Random
	Noise       float64 // P(flip) for noisy Tit for Tat
	Forgiveness float64 // P(forgive a defection) for generous Tit for Tat
}

func DefaultParams() Params {
	return Params{
		Coin:        meta.COIN,
		Noise:       meta.NOISE,
		Forgiveness: meta.FORGIVENESS,
	}
}
