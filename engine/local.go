package engine

import (
	"fmt"

	"dilemma/game"
	"dilemma/meta"
	"dilemma/strategy"

	"github.com/rs/zerolog/log"
)

type Option func(m *Match)

// WithRand sets the source used to pick the opponent and by the
// randomized strategies.
func WithRand(rng strategy.Rand) Option {
	return func(m *Match) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed is WithRand with a fresh seeded source.
func WithSeed(seed uint64) Option {
	return func(m *Match) {
		m.rng = strategy.NewRand(seed)
	}
}

// WithStrategy fixes the opponent instead of picking one at random.
func WithStrategy(kind strategy.Kind) Option {
	return func(m *Match) {
		if !kind.Valid() {
			panic(fmt.Sprintf("invalid strategy kind %d", int(kind)))
		}
		m.forced = &kind
	}
}

func WithRounds(rounds int) Option {
	return func(m *Match) {
		if rounds > 0 {
			m.rounds = rounds
		}
	}
}

func WithParams(params strategy.Params) Option {
	return func(m *Match) {
		m.params = params
	}
}

// Match is the local Engine. It is not safe for concurrent use; give each
// concurrent match its own Match.
type Match struct {
	rng    strategy.Rand
	params strategy.Params
	rounds int
	forced *strategy.Kind

	state    game.MatchState
	kind     strategy.Kind
	opponent strategy.Strategy
}

// NewMatch creates an engine and starts its first match.
func NewMatch(options ...Option) *Match {
	m := &Match{ // Default values
		params: strategy.DefaultParams(),
		rounds: meta.TOTAL_ROUNDS,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = strategy.NewRand(0)
	}
	m.Init()
	return m
}

func (m *Match) Init() game.MatchState {
	m.kind = m.pick()
	m.opponent = strategy.New(m.kind, m.rng, m.params)
	m.state = game.NewMatchState(m.rounds)

	log.Debug().Msgf("new match of %d rounds against %s", m.rounds, m.kind)
	return m.state.Copy()
}

func (m *Match) pick() strategy.Kind {
	if m.forced != nil {
		return *m.forced
	}
	return strategy.Pick(m.rng)
}

func (m *Match) Play(move game.Move) (game.RoundResult, error) {
	if m.state.Completed {
		return game.RoundResult{}, &game.InvalidStateError{Round: m.state.Round, TotalRounds: m.state.TotalRounds}
	}
	if !move.Valid() {
		return game.RoundResult{}, &game.InvalidMoveError{Move: move}
	}

	opponentMove := m.opponent.Decide()
	record := m.state.Apply(move, opponentMove)
	m.opponent.Observe(opponentMove, move)

	log.Debug().
		Int("round", record.Round).
		Stringer("self", record.SelfMove).
		Stringer("opponent", record.OpponentMove).
		Int("selfPoints", record.SelfPoints).
		Int("opponentPoints", record.OpponentPoints).
		Msg("round resolved")

	result := game.RoundResult{
		Record:        record,
		SelfScore:     m.state.SelfScore,
		OpponentScore: m.state.OpponentScore,
		Round:         m.state.Round,
		TotalRounds:   m.state.TotalRounds,
		Completed:     m.state.Completed,
	}
	if m.state.Completed {
		result.Outcome = m.state.Outcome()
		result.Strategy = m.opponent.Name()
		log.Info().Msgf("match over: %s %d-%d against %s",
			result.Outcome, result.SelfScore, result.OpponentScore, result.Strategy)
	}
	return result, nil
}

func (m *Match) State() game.MatchState {
	return m.state.Copy()
}

// Opponent reveals the opponent's kind. Only tests and the tournament
// should look before the match completes.
func (m *Match) Opponent() strategy.Kind {
	return m.kind
}
