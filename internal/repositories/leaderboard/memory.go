package leaderboard

import (
	"context"
	"sync"

	"github.com/KirkDiggler/wordlive/internal/models"
)

// memoryRepository keeps boards in process memory
type memoryRepository struct {
	mu     sync.RWMutex
	boards map[string][]models.LeaderboardEntry
}

// NewMemory creates an in-memory leaderboard repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		boards: make(map[string][]models.LeaderboardEntry),
	}
}

// GetEntries returns copies of the stored entries
func (r *memoryRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.BoardID == "" {
		return nil, ErrEmptyBoardID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.boards[input.BoardID]
	entries := make([]*models.LeaderboardEntry, 0, len(stored))
	for i := range stored {
		entry := stored[i]
		entries = append(entries, &entry)
	}

	return &GetEntriesOutput{
		Entries: entries,
	}, nil
}

// SaveEntries stores copies so callers cannot mutate the board afterwards
func (r *memoryRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.BoardID == "" {
		return ErrEmptyBoardID
	}

	stored := make([]models.LeaderboardEntry, 0, len(input.Entries))
	for _, entry := range input.Entries {
		if entry == nil {
			continue
		}
		stored = append(stored, *entry)
	}

	r.mu.Lock()
	r.boards[input.BoardID] = stored
	r.mu.Unlock()

	return nil
}
