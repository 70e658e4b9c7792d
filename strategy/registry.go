package strategy

import (
	"fmt"

	"dilemma/game"
	"dilemma/utils"
)

// Kind identifies one of the nine strategies.
type Kind int

const (
	AlwaysCooperate Kind = iota
	AlwaysDefect
	Random
	TitForTat
	GrimTrigger
	Pavlov
	NoisyTitForTat
	GenerousTitForTat
	SuspiciousTitForTat
)

// Kinds lists every strategy in selection order.
var Kinds = []Kind{
	AlwaysCooperate,
	AlwaysDefect,
	Random,
	TitForTat,
	GrimTrigger,
	Pavlov,
	NoisyTitForTat,
	GenerousTitForTat,
	SuspiciousTitForTat,
}

func (k Kind) Valid() bool {
	return k >= AlwaysCooperate && k <= SuspiciousTitForTat
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return New(k, nil, Params{}).Name()
}

// New creates a fresh strategy with empty memory. rng may be nil for the
// deterministic kinds.
func New(kind Kind, rng Rand, params Params) Strategy {
	switch kind {
	case AlwaysCooperate:
		return alwaysCooperate{}
	case AlwaysDefect:
		return alwaysDefect{}
	case Random:
		return &random{rng: rng, coin: params.Coin}
	case TitForTat:
		return newTitForTat()
	case GrimTrigger:
		return &grimTrigger{}
	case Pavlov:
		return &pavlov{lastOutcome: game.Cooperate}
	case NoisyTitForTat:
		return &noisyTitForTat{titForTat: *newTitForTat(), rng: rng, noise: params.Noise}
	case GenerousTitForTat:
		return &generousTitForTat{titForTat: *newTitForTat(), rng: rng, forgiveness: params.Forgiveness}
	case SuspiciousTitForTat:
		return &suspiciousTitForTat{titForTat: *newTitForTat(), first: true}
	}
	panic(fmt.Sprintf("unknown strategy kind %d", int(kind)))
}

// Pick selects a kind uniformly at random.
func Pick(rng Rand) Kind {
	return Kinds[rng.Intn(len(Kinds))]
}

// Lookup resolves a display name such as "Grim Trigger" to its kind.
// Matching ignores case and surrounding space.
func Lookup(name string) (Kind, error) {
	i := utils.FindFold(Names(), name)
	if i < 0 {
		return -1, fmt.Errorf("unknown strategy %q", name)
	}
	return Kinds[i], nil
}

// Names returns the display names of all kinds.
func Names() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return names
}
