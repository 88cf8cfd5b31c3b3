package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordlive/internal/repositories/leaderboard Repository

import (
	"context"
)

// Repository defines the interface for leaderboard persistence
type Repository interface {
	// GetEntries returns every entry of a board in ranked order
	GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error)

	// SaveEntries replaces the entries of a board
	SaveEntries(ctx context.Context, input *SaveEntriesInput) error
}
