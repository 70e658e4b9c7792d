package player

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dilemma/game"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// lineReader is the part of *readline.Instance the terminal player uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Human reads the self side's moves from a terminal.
type Human struct {
	in  lineReader
	out io.Writer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewTerminal opens a readline instance on the process terminal. The caller
// closes it.
func NewTerminal() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdilemma>\033[0m ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
}

func NewHuman(rl *readline.Instance) *Human {
	return newHuman(rl, rl.Stdout())
}

func newHuman(in lineReader, out io.Writer) *Human {
	return &Human{in: in, out: out}
}

func (h *Human) Name() string { return "You" }

func (h *Human) readLine() (string, error) {
	for {
		line, err := h.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", ErrQuit
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "bye", "exit", "quit":
			return "", ErrQuit
		case "":
			continue
		}
		return line, nil
	}
}

func (h *Human) NextMove(state game.MatchState) (game.Move, error) {
	h.in.SetPrompt(fmt.Sprintf("round %d of %d [c/d]> ", state.Round, state.TotalRounds))
	for {
		line, err := h.readLine()
		if err != nil {
			return -1, err
		}
		switch line {
		case "help":
			h.usage()
			continue
		case "again":
			return -1, ErrRestart
		}
		move, err := game.ParseMove(line)
		if err != nil {
			log.Debug().Err(err).Msg("rejected input")
			fmt.Fprintln(h.out, err)
			continue
		}
		return move, nil
	}
}

func (h *Human) Observe(result game.RoundResult) {
	r := result.Record
	fmt.Fprintf(h.out, "Round %d: You chose %v, CPU chose %v. Scores: You %d - CPU %d\n",
		r.Round, r.SelfMove, r.OpponentMove, result.SelfScore, result.OpponentScore)
	if !result.Completed {
		return
	}
	fmt.Fprintln(h.out, "Game Over!")
	fmt.Fprintf(h.out, "Final Score: You %d - CPU %d\n", result.SelfScore, result.OpponentScore)
	fmt.Fprintf(h.out, "Result: %v. The CPU was playing %s.\n", result.Outcome, result.Strategy)
}

// Again asks whether to start another match.
func (h *Human) Again() (bool, error) {
	h.in.SetPrompt("play again? [y/n]> ")
	for {
		line, err := h.readLine()
		if errors.Is(err, ErrQuit) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes", "again":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (h *Human) usage() {
	io.WriteString(h.out, "commands:\n")
	io.WriteString(h.out, "c, cooperate - cooperate this round\n")
	io.WriteString(h.out, "d, defect - defect this round\n")
	io.WriteString(h.out, "again - abandon this match and start a new one\n")
	io.WriteString(h.out, "exit - leave the game\n")
}
