package lexicon

import "github.com/KirkDiggler/wordlive/internal/models"

// Config holds configuration for the lexicon service
type Config struct {
	// AnswersFile optionally replaces the embedded target word list
	AnswersFile string

	// AllowedFile optionally replaces the embedded list of extra accepted guesses
	AllowedFile string

	// DefinitionsFile optionally replaces the embedded definitions (JSON object keyed by word)
	DefinitionsFile string

	// Seed makes word selection deterministic when non-zero
	Seed int64
}

// RandomWordInput contains parameters for picking a target word
type RandomWordInput struct {
	Length int
}

// RandomWordOutput contains the picked word in uppercase
type RandomWordOutput struct {
	Word string
}

// ValidateWordInput contains the word to validate
type ValidateWordInput struct {
	Word string
}

// ValidateWordOutput reports whether the word is accepted
type ValidateWordOutput struct {
	Valid bool
}

// GetDefinitionInput contains the word to look up
type GetDefinitionInput struct {
	Word string
}

// GetDefinitionOutput contains the definition, or nil when none is known
type GetDefinitionOutput struct {
	Definition *models.Definition
}
