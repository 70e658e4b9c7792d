package config

import (
	"flag"
	"fmt"

	"dilemma/meta"
)

const (
	ModePlay       = "play"
	ModeTournament = "tournament"
)

type Config struct {
	Mode     string
	Seed     uint64
	Opponent string
	Games    int
	Workers  int
	OutDir   string
	LogLevel string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dilemma", flag.ContinueOnError)
	fs.StringVar(&c.Mode, "mode", ModePlay, "play against the computer, or run a tournament of all strategies")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed; 0 seeds from system entropy")
	fs.StringVar(&c.Opponent, "opponent", "", "force the opponent strategy by name, e.g. \"Grim Trigger\"")
	fs.IntVar(&c.Games, "games", meta.GAMES, "tournament matches per matchup")
	fs.IntVar(&c.Workers, "workers", 4, "tournament matches played concurrently")
	fs.StringVar(&c.OutDir, "out", "experiments/tournament", "directory for tournament results")
	fs.StringVar(&c.LogLevel, "log-level", "info", "zerolog level")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if c.Mode != ModePlay && c.Mode != ModeTournament {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}
