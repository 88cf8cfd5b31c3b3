package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordlive/internal/services/leaderboard Service

import "context"

// Service aggregates round wins per player and exposes the ranked board
type Service interface {
	// RecordWin credits one win to a player
	RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error)

	// GetTopEntries returns the highest ranked entries
	GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error)
}
