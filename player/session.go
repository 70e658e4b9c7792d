package player

import (
	"errors"

	"dilemma/engine"

	"github.com/rs/zerolog/log"
)

// Rematcher is a Player that can be asked whether to play another match.
type Rematcher interface {
	Player
	Again() (bool, error)
}

// Session plays matches on one engine until the player stops.
type Session struct {
	player  Rematcher
	engine  engine.Engine
	matches int
}

func NewSession(player Rematcher, e engine.Engine) *Session {
	return &Session{player: player, engine: e}
}

// Matches is the number of matches played to completion.
func (s *Session) Matches() int { return s.matches }

// Run returns nil when the player quits.
func (s *Session) Run() error {
	for {
		_, err := NewController(s.player, s.engine).Run()
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrRestart):
			log.Debug().Msg("match abandoned, starting a new one")
			s.engine.Init()
			continue
		case err != nil:
			return err
		}
		s.matches++

		again, err := s.player.Again()
		if err != nil || !again {
			return err
		}
		s.engine.Init()
	}
}
