package lexicon

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordlive/internal/services/lexicon Service

import "context"

// Service supplies target words, validates guesses and looks up definitions
type Service interface {
	// RandomWord returns a random target word of the requested length
	RandomWord(ctx context.Context, input *RandomWordInput) (*RandomWordOutput, error)

	// ValidateWord reports whether a string is an acceptable guess
	ValidateWord(ctx context.Context, input *ValidateWordInput) (*ValidateWordOutput, error)

	// GetDefinition looks up meanings and examples for a word
	GetDefinition(ctx context.Context, input *GetDefinitionInput) (*GetDefinitionOutput, error)
}
