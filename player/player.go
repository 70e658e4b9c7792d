package player

import (
	"dilemma/game"
	"dilemma/strategy"
)

// Player supplies the self side's move each round and sees every result.
type Player interface {
	Name() string
	NextMove(state game.MatchState) (game.Move, error)
	Observe(result game.RoundResult)
}

// Bot plays the self side with a strategy.
type Bot struct {
	kind     strategy.Kind
	rng      strategy.Rand
	params   strategy.Params
	strategy strategy.Strategy
}

// NewBot creates a bot; Reset must be called between matches.
func NewBot(kind strategy.Kind, rng strategy.Rand, params strategy.Params) *Bot {
	b := &Bot{kind: kind, rng: rng, params: params}
	b.Reset()
	return b
}

// Reset forgets everything learned in the previous match.
func (b *Bot) Reset() {
	b.strategy = strategy.New(b.kind, b.rng, b.params)
}

func (b *Bot) Kind() strategy.Kind { return b.kind }

func (b *Bot) Name() string { return b.strategy.Name() }

func (b *Bot) NextMove(game.MatchState) (game.Move, error) {
	return b.strategy.Decide(), nil
}

func (b *Bot) Observe(result game.RoundResult) {
	b.strategy.Observe(result.Record.SelfMove, result.Record.OpponentMove)
}
