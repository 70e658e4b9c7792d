package player

import (
	"errors"
	"fmt"

	"dilemma/engine"
	"dilemma/game"
)

var (
	// ErrQuit is returned by a Player that wants to abandon the match.
	ErrQuit = errors.New("player quit")
	// ErrRestart is returned by a Player that wants a new match now.
	ErrRestart = errors.New("player restarted")
)

type Controller interface {
	Run() (game.RoundResult, error)
}

type matchController struct {
	player Player
	engine engine.Engine
}

func NewController(player Player, engine engine.Engine) *matchController {
	return &matchController{
		player: player,
		engine: engine,
	}
}

// Run plays the engine's current match to completion and returns the final
// round's result.
func (c *matchController) Run() (game.RoundResult, error) {
	state := c.engine.State()
	for !state.Completed {
		move, err := c.player.NextMove(state)
		if err != nil {
			return game.RoundResult{}, err
		}

		result, err := c.engine.Play(move)
		if err != nil {
			return game.RoundResult{}, fmt.Errorf("round %d: %w", state.Round, err)
		}
		c.player.Observe(result)

		if result.Completed {
			return result, nil
		}
		state = c.engine.State()
	}
	return game.RoundResult{}, &game.InvalidStateError{Round: state.Round, TotalRounds: state.TotalRounds}
}
