package messaging

import (
	"github.com/KirkDiggler/wordlive/internal/models"
)

// DefinitionNotFound is shown in a round summary when the lexicon has no entry for the word
const DefinitionNotFound = "Definition not found."

// Config holds the dependencies for the messaging service
type Config struct {
	// Seed for the title picker, zero means seed from the clock
	Seed int64
}

// GetRoundMessageInput contains the round state the message describes
type GetRoundMessageInput struct {
	State   models.RoundState
	Outcome models.RoundOutcome

	// Word is revealed on timeout
	Word string

	// WinnerName is used when Outcome is a win
	WinnerName string

	// GenerationFailed is set when the lexicon could not supply a word
	GenerationFailed bool
}

// GetRoundMessageOutput contains the generated status line, empty while a round is running
type GetRoundMessageOutput struct {
	Message string
}

// GetSummaryTitleInput is the input for GetSummaryTitle
type GetSummaryTitleInput struct {
	Outcome models.RoundOutcome
}

// GetSummaryTitleOutput is the output for GetSummaryTitle
type GetSummaryTitleOutput struct {
	Title string
}

// GetInvalidWordMessageInput is the input for GetInvalidWordMessage
type GetInvalidWordMessageInput struct {
	Word       string
	PlayerName string
}

// GetInvalidWordMessageOutput is the output for GetInvalidWordMessage
type GetInvalidWordMessageOutput struct {
	Message string
}

// GetHintMessageInput is the input for GetHintMessage
type GetHintMessageInput struct {
	// Connected reports whether the chat source is live
	Connected bool
}

// GetHintMessageOutput is the output for GetHintMessage
type GetHintMessageOutput struct {
	Message string
}
