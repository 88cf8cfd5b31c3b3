package leaderboard

import (
	"github.com/KirkDiggler/wordlive/internal/common/uuid"
	"github.com/KirkDiggler/wordlive/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordlive/internal/repositories/leaderboard"
)

// DefaultTopN is the number of entries shown on the board
const DefaultTopN = 3

// Config holds the dependencies for the leaderboard service
type Config struct {
	// Repository stores the board
	Repository leaderboardRepo.Repository

	// UUID generates the board id when BoardID is empty
	UUID uuid.UUID

	// BoardID names the board, a fresh one is generated per process when empty
	BoardID string

	// TopN caps GetTopEntries, zero means DefaultTopN
	TopN int
}

// RecordWinInput contains the winning player
type RecordWinInput struct {
	Player models.Player
}

// RecordWinOutput contains the updated entry and the new top entries
type RecordWinOutput struct {
	Entry *models.LeaderboardEntry
	Top   []*models.LeaderboardEntry
}

// GetTopEntriesInput is the input for GetTopEntries
type GetTopEntriesInput struct{}

// GetTopEntriesOutput is the output for GetTopEntries
type GetTopEntriesOutput struct {
	Entries []*models.LeaderboardEntry
}
