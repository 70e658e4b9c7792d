package engine

import "dilemma/game"

// Engine drives one match against a computer-controlled opponent.
type Engine interface {
	// Init starts a new match, discarding the previous one and its opponent.
	Init() game.MatchState
	// Play resolves one round with the self player's move.
	Play(move game.Move) (game.RoundResult, error)
	// State returns a copy of the current match state.
	State() game.MatchState
}
