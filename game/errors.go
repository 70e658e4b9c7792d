package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState = errors.New("match is over - no moves allowed")
	ErrInvalidMove  = errors.New("invalid move")
)

// InvalidStateError is returned when a round is played on a completed match.
type InvalidStateError struct {
	Round       int
	TotalRounds int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%v: %d of %d rounds played", ErrInvalidState, e.Round-1, e.TotalRounds)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvalidMoveError is returned for a move outside Cooperate and Defect.
type InvalidMoveError struct {
	Move  Move
	Input string // raw text when the move came from ParseMove
}

func (e *InvalidMoveError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%v %q: want c or d", ErrInvalidMove, e.Input)
	}
	return fmt.Sprintf("%v %v", ErrInvalidMove, e.Move)
}

func (e *InvalidMoveError) Unwrap() error { return ErrInvalidMove }
