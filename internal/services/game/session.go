package game

import (
	"time"

	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/models"
)

// roundTimer is a cancellable scheduled callback. cancelled is only touched
// on the loop, so a callback that already fired but has not run yet still
// observes the cancellation.
type roundTimer struct {
	timer     clock.Timer
	cancelled bool
}

func (t *roundTimer) cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

// roundSession owns everything that lives for exactly one round: the target
// word, the tracker, the dedup set, the cooldown guard and every pending timer.
type roundSession struct {
	id      string
	word    string
	state   models.RoundState
	outcome models.RoundOutcome
	winner  *models.Player

	remaining        int
	generationFailed bool

	// ended is the one-shot end token, the first trigger takes it
	ended bool

	tracker *Tracker
	seen    map[string]struct{}

	// guard is set while an accepted guess cools down
	guard   bool
	backlog []*models.ChatMessage

	tick       *roundTimer
	cooldown   *roundTimer
	summary    *roundTimer
	restart    *roundTimer
	retry      *roundTimer
	startedAt  time.Time
	endedAt    time.Time
	summarized *models.RoundSummary
}

func newRoundSession(id string, recentLimit int, startedAt time.Time) *roundSession {
	return &roundSession{
		id:        id,
		state:     models.RoundStateLoading,
		tracker:   NewTracker(recentLimit),
		seen:      make(map[string]struct{}),
		startedAt: startedAt,
	}
}

// accepting reports whether a guess may be scored right now
func (r *roundSession) accepting() bool {
	return r.state == models.RoundStateActive && !r.ended
}

// markSeen adds the word to the dedup set, reporting false if it was already there
func (r *roundSession) markSeen(word string) bool {
	if _, ok := r.seen[word]; ok {
		return false
	}
	r.seen[word] = struct{}{}
	return true
}

// stopPlay cancels the countdown and the cooldown and drops queued messages
func (r *roundSession) stopPlay() {
	r.tick.cancel()
	r.cooldown.cancel()
	r.guard = false
	r.backlog = nil
}

// teardown cancels every pending timer of the round
func (r *roundSession) teardown() {
	r.stopPlay()
	r.summary.cancel()
	r.restart.cancel()
	r.retry.cancel()
}
