package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/wordlive/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordlive/internal/repositories/leaderboard"
)

// LeaderboardError is a custom error type for leaderboard service errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilRepository LeaderboardError = "repository cannot be nil"
	ErrNilUUID       LeaderboardError = "uuid generator cannot be nil when no board id is set"
	ErrNilInput      LeaderboardError = "input cannot be nil"
	ErrEmptyPlayerID LeaderboardError = "player id cannot be empty"
)

type service struct {
	repo    leaderboardRepo.Repository
	boardID string
	topN    int

	// serializes read-modify-write of the board
	mu sync.Mutex
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	boardID := cfg.BoardID
	if boardID == "" {
		if cfg.UUID == nil {
			return nil, ErrNilUUID
		}
		boardID = cfg.UUID.NewUUID()
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &service{
		repo:    cfg.Repository,
		boardID: boardID,
		topN:    topN,
	}, nil
}

// BoardID returns the id of the board this service writes to
func (s *service) BoardID() string {
	return s.boardID
}

// RecordWin increments the player's wins, inserting a snapshot of the player on
// their first win, then re-ranks the board
func (s *service) RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Player.ID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.GetEntries(ctx, &leaderboardRepo.GetEntriesInput{
		BoardID: s.boardID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := current.Entries
	var entry *models.LeaderboardEntry
	for _, e := range entries {
		if e.Player.ID == input.Player.ID {
			entry = e
			break
		}
	}

	if entry != nil {
		entry.Wins++
	} else {
		entry = &models.LeaderboardEntry{
			Player: input.Player,
			Wins:   1,
		}
		entries = append(entries, entry)
	}

	// Ties keep their previous relative order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Wins > entries[j].Wins
	})

	if err := s.repo.SaveEntries(ctx, &leaderboardRepo.SaveEntriesInput{
		BoardID: s.boardID,
		Entries: entries,
	}); err != nil {
		return nil, fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return &RecordWinOutput{
		Entry: copyEntry(entry),
		Top:   s.top(entries),
	}, nil
}

// GetTopEntries returns at most TopN entries by wins descending
func (s *service) GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.GetEntries(ctx, &leaderboardRepo.GetEntriesInput{
		BoardID: s.boardID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetTopEntriesOutput{
		Entries: s.top(current.Entries),
	}, nil
}

func (s *service) top(entries []*models.LeaderboardEntry) []*models.LeaderboardEntry {
	n := len(entries)
	if n > s.topN {
		n = s.topN
	}

	out := make([]*models.LeaderboardEntry, 0, n)
	for _, e := range entries[:n] {
		out = append(out, copyEntry(e))
	}
	return out
}

func copyEntry(e *models.LeaderboardEntry) *models.LeaderboardEntry {
	c := *e
	return &c
}
