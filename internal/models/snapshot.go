package models

import "time"

// RoundSnapshot is a read-only projection of the current round
type RoundSnapshot struct {
	// RoundID identifies the round, empty before the first round starts
	RoundID string `json:"roundId"`

	State   RoundState   `json:"state"`
	Outcome RoundOutcome `json:"outcome,omitempty"`

	// WordLength is the number of letters of the target word
	WordLength int `json:"wordLength"`

	// RemainingSeconds is the countdown value, zero once the round has ended
	RemainingSeconds int `json:"remainingSeconds"`

	// BestGuess is the highest scoring guess so far
	BestGuess *Guess `json:"bestGuess,omitempty"`

	// RecentGuesses is newest first
	RecentGuesses []Guess `json:"recentGuesses"`

	// GuessCount is the number of guesses accepted this round
	GuessCount int `json:"guessCount"`

	// Word is only revealed once the round has ended
	Word string `json:"word,omitempty"`

	// Winner is set when the round was won
	Winner *Player `json:"winner,omitempty"`

	// Message is the status line for the round
	Message string `json:"message"`

	// Connected reports whether the chat source is live
	Connected bool `json:"connected"`

	// Hint is the call to action shown under the grid
	Hint string `json:"hint"`
}

// RoundSummary is shown after a round ends
type RoundSummary struct {
	RoundID     string       `json:"roundId"`
	Outcome     RoundOutcome `json:"outcome"`
	Title       string       `json:"title"`
	Word        string       `json:"word"`
	Definitions []string     `json:"definitions"`
	Examples    []string     `json:"examples"`
	Winner      *Player      `json:"winner,omitempty"`
	GuessCount  int          `json:"guessCount"`
}

// ValidationNotice reports a well formed guess that is not an accepted word
type ValidationNotice struct {
	Word      string    `json:"word"`
	Player    Player    `json:"player"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}
