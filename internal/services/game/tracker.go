package game

import (
	"github.com/KirkDiggler/wordlive/internal/models"
)

// Tracker holds the best guess and the recent guesses of one round
type Tracker struct {
	limit   int
	best    *models.Guess
	recent  []models.Guess
	history []models.Guess
}

// NewTracker creates a tracker keeping at most limit recent guesses
func NewTracker(limit int) *Tracker {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &Tracker{
		limit:  limit,
		recent: make([]models.Guess, 0, limit+1),
	}
}

// Record adds a guess. The best guess only changes on a strictly higher
// score, so the earliest guess wins ties.
func (t *Tracker) Record(g models.Guess) {
	t.history = append(t.history, g)

	t.recent = append([]models.Guess{g}, t.recent...)
	if len(t.recent) > t.limit {
		t.recent = t.recent[:t.limit]
	}

	if t.best == nil || g.Score > t.best.Score {
		best := g
		t.best = &best
	}
}

// Best returns a copy of the best guess, or nil before the first guess
func (t *Tracker) Best() *models.Guess {
	if t.best == nil {
		return nil
	}
	best := *t.best
	return &best
}

// Recent returns the recent guesses, newest first
func (t *Tracker) Recent() []models.Guess {
	out := make([]models.Guess, len(t.recent))
	copy(out, t.recent)
	return out
}

// Count returns the number of guesses recorded this round
func (t *Tracker) Count() int {
	return len(t.history)
}
