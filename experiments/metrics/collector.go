package metrics

import (
	"slices"
	"time"

	"dilemma/game"
	"dilemma/strategy"

	"github.com/samber/lo"
)

// MatchRecord is one tournament match, seen from the player's side.
type MatchRecord struct {
	ID            int
	Player        strategy.Kind
	Opponent      strategy.Kind
	Seed          uint64
	PlayerScore   int
	OpponentScore int
	Outcome       game.Outcome
	Rounds        int
	Duration      time.Duration
}

// Standing is a strategy's totals over both seats of every match it played.
type Standing struct {
	Kind       strategy.Kind
	Matches    int
	TotalScore int
	Wins       int
	Losses     int
	Ties       int
}

func (s Standing) MeanScore() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Matches)
}

// Standings tallies records per kind, best total score first. Ties keep
// the order of strategy.Kinds.
func Standings(records []MatchRecord) []Standing {
	standings := lo.Map(strategy.Kinds, func(kind strategy.Kind, _ int) Standing {
		asPlayer := lo.Filter(records, func(r MatchRecord, _ int) bool { return r.Player == kind })
		asOpponent := lo.Filter(records, func(r MatchRecord, _ int) bool { return r.Opponent == kind })

		s := Standing{
			Kind:    kind,
			Matches: len(asPlayer) + len(asOpponent),
			TotalScore: lo.SumBy(asPlayer, func(r MatchRecord) int { return r.PlayerScore }) +
				lo.SumBy(asOpponent, func(r MatchRecord) int { return r.OpponentScore }),
		}
		for _, r := range asPlayer {
			s.tally(r.Outcome)
		}
		for _, r := range asOpponent {
			s.tally(reverse(r.Outcome))
		}
		return s
	})

	slices.SortStableFunc(standings, func(a, b Standing) int { return b.TotalScore - a.TotalScore })
	return standings
}

func (s *Standing) tally(o game.Outcome) {
	switch o {
	case game.Win:
		s.Wins++
	case game.Lose:
		s.Losses++
	case game.Tie:
		s.Ties++
	}
}

func reverse(o game.Outcome) game.Outcome {
	switch o {
	case game.Win:
		return game.Lose
	case game.Lose:
		return game.Win
	}
	return o
}
