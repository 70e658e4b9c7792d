package experiments

import (
	"context"
	"fmt"
	"time"

	"dilemma/engine"
	"dilemma/experiments/metrics"
	"dilemma/meta"
	"dilemma/player"
	"dilemma/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Games   int    // per matchup
	Workers int    // concurrent matches
	Seed    uint64 // 0 draws a random base seed
	Rounds  int
	Params  strategy.Params
}

func DefaultConfig() Config {
	return Config{
		Games:   meta.GAMES,
		Workers: 4,
		Rounds:  meta.TOTAL_ROUNDS,
		Params:  strategy.DefaultParams(),
	}
}

// MatchUps pairs every strategy with every strategy, itself included.
// The first kind plays the self side.
func MatchUps() [][2]strategy.Kind {
	matchUps := make([][2]strategy.Kind, 0, len(strategy.Kinds)*len(strategy.Kinds))
	for _, p := range strategy.Kinds {
		for _, o := range strategy.Kinds {
			matchUps = append(matchUps, [2]strategy.Kind{p, o})
		}
	}
	return matchUps
}

// RunTournament plays cfg.Games matches for every matchup. Each match owns
// its engine, bot and source, seeded from the base seed and the match ID, so
// a run is reproducible for a fixed seed whatever the number of workers.
func RunTournament(ctx context.Context, cfg Config) ([]metrics.MatchRecord, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games per matchup must be positive, got %d", cfg.Games)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = strategy.EntropySeed()
	}

	matchUps := MatchUps()
	records := make([]metrics.MatchRecord, len(matchUps)*cfg.Games)

	log.Info().Msgf("starting tournament of %d matchups, %d games each, seed %d", len(matchUps), cfg.Games, cfg.Seed)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for mi, matchUp := range matchUps {
		for gi := 0; gi < cfg.Games; gi++ {
			id := mi*cfg.Games + gi + 1
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				record, err := runGame(cfg, id, matchUp[0], matchUp[1])
				if err != nil {
					return fmt.Errorf("match %d %s vs %s: %w", id, matchUp[0], matchUp[1], err)
				}
				records[id-1] = record
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed tournament of %d matches", len(records))
	return records, nil
}

// runGame plays a single match between two strategies.
func runGame(cfg Config, id int, self, opponent strategy.Kind) (metrics.MatchRecord, error) {
	seed := cfg.Seed + uint64(id)
	rng := strategy.NewRand(seed)

	start := time.Now()
	e := engine.NewMatch(
		engine.WithRand(rng),
		engine.WithStrategy(opponent),
		engine.WithRounds(cfg.Rounds),
		engine.WithParams(cfg.Params),
	)
	bot := player.NewBot(self, rng, cfg.Params)
	result, err := player.NewController(bot, e).Run()
	if err != nil {
		return metrics.MatchRecord{}, err
	}

	return metrics.MatchRecord{
		ID:            id,
		Player:        self,
		Opponent:      opponent,
		Seed:          seed,
		PlayerScore:   result.SelfScore,
		OpponentScore: result.OpponentScore,
		Outcome:       result.Outcome,
		Rounds:        result.TotalRounds,
		Duration:      time.Since(start),
	}, nil
}

// Run plays a tournament and stores its records and standings under dir.
func Run(ctx context.Context, cfg Config, dir string) ([]metrics.Standing, error) {
	records, err := RunTournament(ctx, cfg)
	if err != nil {
		return nil, err
	}
	standings := metrics.Standings(records)

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteMatchRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to store match records: %w", err)
	}
	log.Info().Msg("stored match records")

	err = writer.WriteStandings(standings)
	if err != nil {
		return nil, fmt.Errorf("failed to store standings: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored standings")

	return standings, nil
}
