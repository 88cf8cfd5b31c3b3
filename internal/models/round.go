package models

// RoundState represents the lifecycle stage of the current round
type RoundState string

const (
	// RoundStateLoading indicates a target word is being selected
	RoundStateLoading RoundState = "loading"

	// RoundStateActive indicates the round accepts guesses and the timer is running
	RoundStateActive RoundState = "active"

	// RoundStateEnded indicates the round finished by win or timeout
	RoundStateEnded RoundState = "ended"

	// RoundStateRestarting indicates the round is being torn down
	RoundStateRestarting RoundState = "restarting"
)

// RoundOutcome is how a round ended
type RoundOutcome string

const (
	// RoundOutcomeNone is the outcome of a round that has not ended
	RoundOutcomeNone RoundOutcome = ""

	// RoundOutcomeWin indicates a player guessed the target word
	RoundOutcomeWin RoundOutcome = "win"

	// RoundOutcomeTimeout indicates the timer ran out
	RoundOutcomeTimeout RoundOutcome = "timeout"
)
