package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wordlive/internal/models"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	out, err := repo.GetEntries(ctx, &GetEntriesInput{BoardID: "board"})
	require.NoError(t, err)
	assert.Empty(t, out.Entries)

	entry := &models.LeaderboardEntry{Player: models.Player{ID: "a", DisplayName: "Al"}, Wins: 1}
	require.NoError(t, repo.SaveEntries(ctx, &SaveEntriesInput{
		BoardID: "board",
		Entries: []*models.LeaderboardEntry{entry, nil},
	}))

	// mutating the caller's copy must not reach the stored board
	entry.Wins = 99

	out, err = repo.GetEntries(ctx, &GetEntriesInput{BoardID: "board"})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, 1, out.Entries[0].Wins)
	assert.Equal(t, "Al", out.Entries[0].Player.DisplayName)

	out.Entries[0].Wins = 42
	again, err := repo.GetEntries(ctx, &GetEntriesInput{BoardID: "board"})
	require.NoError(t, err)
	assert.Equal(t, 1, again.Entries[0].Wins)
}

func TestMemoryRepositoryInvalidInput(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	_, err := repo.GetEntries(ctx, nil)
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = repo.GetEntries(ctx, &GetEntriesInput{})
	assert.ErrorIs(t, err, ErrEmptyBoardID)

	assert.ErrorIs(t, repo.SaveEntries(ctx, nil), ErrNilInput)
}
