package game

import (
	"fmt"
	"strings"
)

// Move is a player's choice in one round.
type Move int

const (
	Cooperate Move = iota
	Defect
)

// Valid reports whether m is one of the two moves.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}

// Flip returns the other move.
func (m Move) Flip() Move {
	if m == Cooperate {
		return Defect
	}
	return Cooperate
}

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// ParseMove accepts "c", "cooperate", "d" or "defect" in any case.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "cooperate":
		return Cooperate, nil
	case "d", "defect":
		return Defect, nil
	}
	return -1, &InvalidMoveError{Input: s}
}

// Outcome is the final result of a match from the self player's side.
type Outcome int

const (
	Undecided Outcome = iota
	Win
	Lose
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Tie:
		return "Tie"
	}
	return "Undecided"
}

// Decide compares the cumulative scores.
func Decide(selfScore, opponentScore int) Outcome {
	switch {
	case selfScore > opponentScore:
		return Win
	case opponentScore > selfScore:
		return Lose
	}
	return Tie
}
