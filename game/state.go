package game

// RoundRecord is one entry of the match log.
type RoundRecord struct {
	Round          int
	SelfMove       Move
	OpponentMove   Move
	SelfPoints     int
	OpponentPoints int
}

// MatchState is the dynamic state of a match.
type MatchState struct {
	Round         int // 1-based, the round about to be played
	TotalRounds   int
	SelfScore     int
	OpponentScore int
	Completed     bool
	Log           []RoundRecord
}

// NewMatchState returns the state of a match before its first round.
func NewMatchState(totalRounds int) MatchState {
	return MatchState{
		Round:       1,
		TotalRounds: totalRounds,
		Log:         make([]RoundRecord, 0, totalRounds),
	}
}

// Copy returns a copy that shares no memory with ms.
func (ms MatchState) Copy() MatchState {
	logCopy := make([]RoundRecord, len(ms.Log))
	copy(logCopy, ms.Log)
	ms.Log = logCopy
	return ms
}

// Apply scores one round and advances the round counter. The caller
// guarantees the match is not completed and both moves are valid.
func (ms *MatchState) Apply(self, opponent Move) RoundRecord {
	selfPoints, opponentPoints := Score(self, opponent)
	ms.SelfScore += selfPoints
	ms.OpponentScore += opponentPoints

	record := RoundRecord{
		Round:          ms.Round,
		SelfMove:       self,
		OpponentMove:   opponent,
		SelfPoints:     selfPoints,
		OpponentPoints: opponentPoints,
	}
	ms.Log = append(ms.Log, record)

	ms.Round++
	if ms.Round > ms.TotalRounds {
		ms.Completed = true
	}
	return record
}

// Outcome is Undecided until the match completes.
func (ms MatchState) Outcome() Outcome {
	if !ms.Completed {
		return Undecided
	}
	return Decide(ms.SelfScore, ms.OpponentScore)
}

// RoundResult is everything the presentation layer needs after a round.
type RoundResult struct {
	Record        RoundRecord
	SelfScore     int
	OpponentScore int
	Round         int // next round to play
	TotalRounds   int
	Completed     bool

	// Set only when Completed.
	Outcome  Outcome
	Strategy string
}
