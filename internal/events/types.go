package events

import (
	"time"

	"github.com/KirkDiggler/wordlive/internal/models"
)

// Type names an outward event
type Type string

const (
	// TypeRoundSnapshot carries a models.RoundSnapshot
	TypeRoundSnapshot Type = "round_snapshot"

	// TypeRoundSummary carries a models.RoundSummary
	TypeRoundSummary Type = "round_summary"

	// TypeValidationNotice carries a models.ValidationNotice
	TypeValidationNotice Type = "validation_notice"

	// TypeNoticeCleared has no payload and hides the current notice
	TypeNoticeCleared Type = "notice_cleared"

	// TypeLeaderboard carries a LeaderboardPayload
	TypeLeaderboard Type = "leaderboard"
)

// Event is a read-only projection emitted by the game engine
type Event struct {
	Type    Type      `json:"type"`
	RoundID string    `json:"roundId,omitempty"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

// LeaderboardPayload is the top of the leaderboard
type LeaderboardPayload struct {
	Entries []*models.LeaderboardEntry `json:"entries"`
}
