package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dilemma/config"
	"dilemma/engine"
	"dilemma/experiments"
	"dilemma/player"
	"dilemma/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, code, ok := loadConfig(os.Args[1:], os.Stderr)
	if !ok {
		os.Exit(code)
	}
	setupLogging(cfg.LogLevel)

	var err error
	switch cfg.Mode {
	case config.ModeTournament:
		err = runTournament(cfg)
	default:
		err = play(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// loadConfig reports ok=false with the exit status when the program should
// stop before doing anything.
func loadConfig(args []string, stderr io.Writer) (config.Config, int, bool) {
	var cfg config.Config
	err := cfg.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return cfg, 0, false
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cfg, 2, false
	}
	return cfg, 0, true
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func play(cfg config.Config) error {
	options := []engine.Option{engine.WithSeed(cfg.Seed)}
	if cfg.Opponent != "" {
		kind, err := strategy.Lookup(cfg.Opponent)
		if err != nil {
			return err
		}
		options = append(options, engine.WithStrategy(kind))
	}

	rl, err := player.NewTerminal()
	if err != nil {
		return err
	}
	defer rl.Close()

	session := player.NewSession(player.NewHuman(rl), engine.NewMatch(options...))
	return session.Run()
}

func runTournament(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tc := experiments.DefaultConfig()
	tc.Games = cfg.Games
	tc.Workers = cfg.Workers
	tc.Seed = cfg.Seed

	standings, err := experiments.Run(ctx, tc, cfg.OutDir)
	if err != nil {
		return err
	}
	for i, s := range standings {
		log.Info().Msgf("%d. %-24s total %5d  mean %6.2f  W/L/T %d/%d/%d",
			i+1, s.Kind, s.TotalScore, s.MeanScore(), s.Wins, s.Losses, s.Ties)
	}
	return nil
}
