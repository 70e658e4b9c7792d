// meta/meta.go
package meta

// TOTAL_ROUNDS is the number of rounds in a match.
const TOTAL_ROUNDS = 10

// NOISE is the probability that noisy Tit for Tat flips its answer.
const NOISE = 0.1

// FORGIVENESS is the probability that generous Tit for Tat forgets a defection.
const FORGIVENESS = 0.3

// COIN is the probability that Random cooperates.
const COIN = 0.5

// GAMES is the default number of tournament matches per matchup.
const GAMES = 100
