package engine

import (
	"errors"
	"testing"

	"dilemma/game"
	"dilemma/strategy"

	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, m *Match, move game.Move) game.RoundResult {
	t.Helper()
	var result game.RoundResult
	for i := 0; i < 10; i++ {
		var err error
		result, err = m.Play(move)
		require.NoError(t, err)
	}
	return result
}

func TestMatchInit(t *testing.T) {
	m := NewMatch(WithSeed(1))
	state := m.Init()

	require.Equal(t, 1, state.Round)
	require.Equal(t, 10, state.TotalRounds)
	require.Zero(t, state.SelfScore)
	require.Zero(t, state.OpponentScore)
	require.False(t, state.Completed)
	require.Empty(t, state.Log)
	require.True(t, m.Opponent().Valid())
}

func TestMatchPlay(t *testing.T) {
	t.Run("always defect beats a cooperator", func(t *testing.T) {
		m := NewMatch(WithSeed(1), WithStrategy(strategy.AlwaysDefect))
		result := playAll(t, m, game.Cooperate)

		require.True(t, result.Completed)
		require.Equal(t, 0, result.SelfScore)
		require.Equal(t, 50, result.OpponentScore)
		require.Equal(t, game.Lose, result.Outcome)
		require.Equal(t, "Always Defect", result.Strategy)
	})

	t.Run("defecting against always cooperate wins", func(t *testing.T) {
		m := NewMatch(WithSeed(1), WithStrategy(strategy.AlwaysCooperate))
		result := playAll(t, m, game.Defect)

		require.Equal(t, 50, result.SelfScore)
		require.Equal(t, 0, result.OpponentScore)
		require.Equal(t, game.Win, result.Outcome)
		require.Equal(t, "Always Cooperate", result.Strategy)
	})

	t.Run("mutual cooperation ties", func(t *testing.T) {
		m := NewMatch(WithSeed(1), WithStrategy(strategy.AlwaysCooperate))
		result := playAll(t, m, game.Cooperate)

		require.Equal(t, 30, result.SelfScore)
		require.Equal(t, 30, result.OpponentScore)
		require.Equal(t, game.Tie, result.Outcome)
	})

	t.Run("completes exactly on the tenth round", func(t *testing.T) {
		m := NewMatch(WithSeed(3))
		for i := 1; i <= 10; i++ {
			result, err := m.Play(game.Defect)
			require.NoError(t, err)
			require.Equal(t, i, result.Record.Round)
			require.Equal(t, i == 10, result.Completed, "round %d", i)
			if i < 10 {
				require.Empty(t, result.Strategy)
				require.Equal(t, game.Undecided, result.Outcome)
			}
		}
		require.True(t, m.State().Completed)
	})

	t.Run("cumulative scores are the sum of the log", func(t *testing.T) {
		m := NewMatch(WithSeed(5), WithStrategy(strategy.Random))
		moves := []game.Move{game.Cooperate, game.Defect, game.Defect, game.Cooperate, game.Cooperate,
			game.Defect, game.Cooperate, game.Defect, game.Cooperate, game.Defect}

		prevSelf, prevOpp := 0, 0
		for _, mv := range moves {
			result, err := m.Play(mv)
			require.NoError(t, err)
			require.GreaterOrEqual(t, result.SelfScore, prevSelf)
			require.GreaterOrEqual(t, result.OpponentScore, prevOpp)
			prevSelf, prevOpp = result.SelfScore, result.OpponentScore

			r := result.Record
			require.Equal(t, mv, r.SelfMove)
			s, o := game.Score(r.SelfMove, r.OpponentMove)
			require.Equal(t, s, r.SelfPoints)
			require.Equal(t, o, r.OpponentPoints)
		}

		state := m.State()
		require.Len(t, state.Log, 10)
		sumSelf, sumOpp := 0, 0
		for _, r := range state.Log {
			sumSelf += r.SelfPoints
			sumOpp += r.OpponentPoints
		}
		require.Equal(t, sumSelf, state.SelfScore)
		require.Equal(t, sumOpp, state.OpponentScore)
	})

	t.Run("opponent observes from its own side", func(t *testing.T) {
		m := NewMatch(WithSeed(1), WithStrategy(strategy.TitForTat))
		moves := []game.Move{game.Defect, game.Cooperate, game.Defect, game.Defect}
		want := []game.Move{game.Cooperate, game.Defect, game.Cooperate, game.Defect}
		for i, mv := range moves {
			result, err := m.Play(mv)
			require.NoError(t, err)
			require.Equal(t, want[i], result.Record.OpponentMove, "round %d", i+1)
		}
	})

	t.Run("grim trigger never forgives", func(t *testing.T) {
		m := NewMatch(WithSeed(1), WithStrategy(strategy.GrimTrigger))
		_, err := m.Play(game.Defect)
		require.NoError(t, err)
		for i := 0; i < 9; i++ {
			result, err := m.Play(game.Cooperate)
			require.NoError(t, err)
			require.Equal(t, game.Defect, result.Record.OpponentMove)
		}
	})
}

func TestMatchPlay_Completed(t *testing.T) {
	m := NewMatch(WithSeed(1), WithStrategy(strategy.AlwaysDefect))
	playAll(t, m, game.Cooperate)
	before := m.State()

	_, err := m.Play(game.Cooperate)
	require.ErrorIs(t, err, game.ErrInvalidState)

	var stateErr *game.InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	require.Equal(t, 10, stateErr.TotalRounds)

	require.Equal(t, before, m.State())
}

func TestMatchPlay_InvalidMove(t *testing.T) {
	m := NewMatch(WithSeed(1))
	_, err := m.Play(game.Move(3))
	require.ErrorIs(t, err, game.ErrInvalidMove)

	state := m.State()
	require.Equal(t, 1, state.Round)
	require.Empty(t, state.Log)
}

func TestMatchReinit(t *testing.T) {
	m := NewMatch(WithSeed(1), WithStrategy(strategy.GrimTrigger))
	playAll(t, m, game.Defect)

	state := m.Init()
	require.Equal(t, 1, state.Round)
	require.False(t, state.Completed)

	// A fresh Grim Trigger has not been betrayed.
	result, err := m.Play(game.Cooperate)
	require.NoError(t, err)
	require.Equal(t, game.Cooperate, result.Record.OpponentMove)
}

func TestMatchState_IsACopy(t *testing.T) {
	m := NewMatch(WithSeed(1), WithStrategy(strategy.AlwaysCooperate))
	_, err := m.Play(game.Cooperate)
	require.NoError(t, err)

	state := m.State()
	state.Log[0].SelfPoints = 100
	state.SelfScore = 100

	require.Equal(t, 3, m.State().SelfScore)
	require.Equal(t, 3, m.State().Log[0].SelfPoints)
}

func TestMatchSeeded(t *testing.T) {
	// Same seed, same opponent and same moves.
	run := func() []game.RoundRecord {
		m := NewMatch(WithSeed(42))
		playAll(t, m, game.Cooperate)
		return m.State().Log
	}
	require.Equal(t, run(), run())
}

func TestWithRounds(t *testing.T) {
	m := NewMatch(WithSeed(1), WithRounds(3), WithStrategy(strategy.AlwaysCooperate))
	for i := 0; i < 2; i++ {
		result, err := m.Play(game.Cooperate)
		require.NoError(t, err)
		require.False(t, result.Completed)
	}
	result, err := m.Play(game.Cooperate)
	require.NoError(t, err)
	require.True(t, result.Completed)
	require.Equal(t, 9, result.SelfScore)
}

func TestWithStrategy_Invalid(t *testing.T) {
	require.Panics(t, func() { NewMatch(WithStrategy(strategy.Kind(-1))) })
}
