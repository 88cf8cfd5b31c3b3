package leaderboard

import "github.com/KirkDiggler/wordlive/internal/models"

// LeaderboardError is a custom error type for leaderboard repository errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      LeaderboardError = "config cannot be nil"
	ErrNilRedisClient LeaderboardError = "redis client cannot be nil"
	ErrNilInput       LeaderboardError = "input cannot be nil"
	ErrEmptyBoardID   LeaderboardError = "board id cannot be empty"
)

// GetEntriesInput contains parameters for reading a board
type GetEntriesInput struct {
	BoardID string
}

// GetEntriesOutput contains the entries of a board, empty when the board does not exist
type GetEntriesOutput struct {
	Entries []*models.LeaderboardEntry
}

// SaveEntriesInput contains parameters for replacing a board
type SaveEntriesInput struct {
	BoardID string
	Entries []*models.LeaderboardEntry
}
