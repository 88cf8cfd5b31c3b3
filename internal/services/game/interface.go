package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordlive/internal/services/game Service

import "context"

// Service is the game engine driving one round at a time
type Service interface {
	// HandleChatMessage runs a chat message through the guess pipeline
	HandleChatMessage(ctx context.Context, input *HandleChatMessageInput) (*HandleChatMessageOutput, error)

	// RequestRestart cancels the current round and starts a new one, from any state
	RequestRestart(ctx context.Context, input *RequestRestartInput) (*RequestRestartOutput, error)

	// GetSnapshot returns a read-only projection of the current round
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// GetSummary returns the summary of the current round once it is visible
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)
}
