package strategy

import "dilemma/game"

type alwaysCooperate struct{}

func (alwaysCooperate) Name() string             { return "Always Cooperate" }
func (alwaysCooperate) Decide() game.Move        { return game.Cooperate }
func (alwaysCooperate) Observe(_, _ game.Move) {}

type alwaysDefect struct{}

func (alwaysDefect) Name() string             { return "Always Defect" }
func (alwaysDefect) Decide() game.Move        { return game.Defect }
func (alwaysDefect) Observe(_, _ game.Move) {}

type random struct {
	rng  Rand
	coin float64
}

func (*random) Name() string { return "Random" }

func (s *random) Decide() game.Move {
	if s.rng.Float64() < s.coin {
		return game.Cooperate
	}
	return game.Defect
}

func (*random) Observe(_, _ game.Move) {}

// titForTat copies the opponent's previous move and opens with Cooperate.
type titForTat struct {
	lastOpponent game.Move
}

func newTitForTat() *titForTat {
	return &titForTat{lastOpponent: game.Cooperate}
}

func (*titForTat) Name() string        { return "Tit for Tat" }
func (s *titForTat) Decide() game.Move { return s.lastOpponent }

func (s *titForTat) Observe(_, opponent game.Move) {
	s.lastOpponent = opponent
}

type grimTrigger struct {
	betrayed bool
}

func (*grimTrigger) Name() string { return "Grim Trigger" }

func (s *grimTrigger) Decide() game.Move {
	if s.betrayed {
		return game.Defect
	}
	return game.Cooperate
}

// Observe never clears betrayed.
func (s *grimTrigger) Observe(_, opponent game.Move) {
	if opponent == game.Defect {
		s.betrayed = true
	}
}

// pavlov is win-stay, lose-shift: cooperate after matching moves, defect otherwise.
type pavlov struct {
	lastOutcome game.Move
}

func (*pavlov) Name() string        { return "Pavlov" }
func (s *pavlov) Decide() game.Move { return s.lastOutcome }

func (s *pavlov) Observe(self, opponent game.Move) {
	if self == opponent {
		s.lastOutcome = game.Cooperate
	} else {
		s.lastOutcome = game.Defect
	}
}

type noisyTitForTat struct {
	titForTat
	rng   Rand
	noise float64
}

func (*noisyTitForTat) Name() string { return "Tit for Tat + Noise" }

func (s *noisyTitForTat) Decide() game.Move {
	if s.rng.Float64() < s.noise {
		return s.lastOpponent.Flip()
	}
	return s.lastOpponent
}

type generousTitForTat struct {
	titForTat
	rng         Rand
	forgiveness float64
}

func (*generousTitForTat) Name() string { return "Generous Tit for Tat" }

func (s *generousTitForTat) Observe(_, opponent game.Move) {
	if opponent == game.Defect && s.rng.Float64() < s.forgiveness {
		s.lastOpponent = game.Cooperate
		return
	}
	s.lastOpponent = opponent
}

// suspiciousTitForTat opens with Defect, then plays Tit for Tat.
type suspiciousTitForTat struct {
	titForTat
	first bool
}

func (*suspiciousTitForTat) Name() string { return "Suspicious Tit for Tat" }

func (s *suspiciousTitForTat) Decide() game.Move {
	if s.first {
		return game.Defect
	}
	return s.lastOpponent
}

func (s *suspiciousTitForTat) Observe(self, opponent game.Move) {
	s.first = false
	s.titForTat.Observe(self, opponent)
}
