package models

import "time"

// LetterStatus is the outcome of a single letter of a guess
type LetterStatus string

const (
	// LetterStatusCorrect indicates the letter matches the target at that position
	LetterStatusCorrect LetterStatus = "correct"

	// LetterStatusPresent indicates the letter appears elsewhere in the target
	LetterStatusPresent LetterStatus = "present"

	// LetterStatusAbsent indicates the letter is not among the unmatched target letters
	LetterStatusAbsent LetterStatus = "absent"

	// LetterStatusEmpty is a placeholder for an unfilled cell and is never produced by scoring
	LetterStatusEmpty LetterStatus = "empty"
)

// Guess is an accepted, scored guess. It is never modified after creation.
type Guess struct {
	// Word is the uppercase guessed word
	Word string `json:"word"`

	// Author is a copy of the player who submitted the guess
	Author Player `json:"author"`

	// Statuses holds one outcome per letter
	Statuses []LetterStatus `json:"statuses"`

	// Score is the quality score used to rank guesses
	Score int `json:"score"`

	// SubmittedAt is when the guess was accepted
	SubmittedAt time.Time `json:"submittedAt"`
}
