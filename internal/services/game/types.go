package game

import (
	"time"

	"github.com/KirkDiggler/wordlive/internal/chat"
	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/common/uuid"
	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/models"
	"github.com/KirkDiggler/wordlive/internal/services/leaderboard"
	"github.com/KirkDiggler/wordlive/internal/services/lexicon"
	"github.com/KirkDiggler/wordlive/internal/services/messaging"
)

// Defaults applied to zero valued tunables
const (
	DefaultWordLength     = 5
	DefaultRoundDuration  = 300 * time.Second
	DefaultSummaryDelay   = 1500 * time.Millisecond
	DefaultRestartDelay   = 5 * time.Second
	DefaultNoticeDuration = 3 * time.Second
	DefaultGuessCooldown  = 250 * time.Millisecond
	DefaultRecentLimit    = 5
	DefaultBacklogLimit   = 64

	tickInterval = time.Second
)

// Config holds the collaborators and tunables of the game engine
type Config struct {
	Lexicon     lexicon.Service
	Leaderboard leaderboard.Service
	Messaging   messaging.Service
	Source      chat.Source

	// Publisher receives outward events, nil discards them
	Publisher events.Publisher

	Clock clock.Clock
	UUID  uuid.UUID

	WordLength     int
	RoundDuration  time.Duration
	SummaryDelay   time.Duration
	RestartDelay   time.Duration
	NoticeDuration time.Duration
	GuessCooldown  time.Duration
	RecentLimit    int

	// BacklogLimit caps the messages held while a guess cools down
	BacklogLimit int
}

// GuessResult is what the pipeline did with a chat message
type GuessResult string

const (
	// GuessResultAccepted means the guess was scored and recorded
	GuessResultAccepted GuessResult = "accepted"

	// GuessResultQueued means the message waits for the cooldown to clear
	GuessResultQueued GuessResult = "queued"

	// GuessResultInvalidWord means the lexicon rejected the word and a notice was shown
	GuessResultInvalidWord GuessResult = "invalid_word"

	// GuessResultDuplicateWord means the word was already scored this round
	GuessResultDuplicateWord GuessResult = "duplicate_word"

	// GuessResultDuplicateMessage means the same message was delivered again
	GuessResultDuplicateMessage GuessResult = "duplicate_message"

	// GuessResultMalformed means the message had no author or text
	GuessResultMalformed GuessResult = "malformed"

	// GuessResultIgnored means the message was not a guess or the round was not accepting guesses
	GuessResultIgnored GuessResult = "ignored"
)

// HandleChatMessageInput is the input for HandleChatMessage
type HandleChatMessageInput struct {
	Message *models.ChatMessage
}

// HandleChatMessageOutput is the output for HandleChatMessage
type HandleChatMessageOutput struct {
	Result GuessResult

	// Guess is set when the guess was accepted
	Guess *models.Guess

	// Won reports that the guess ended the round
	Won bool

	// Notice is set when the word was rejected
	Notice *models.ValidationNotice
}

// RequestRestartInput is the input for RequestRestart
type RequestRestartInput struct {
	// RequestedBy is logged with the restart
	RequestedBy string
}

// RequestRestartOutput is the output for RequestRestart
type RequestRestartOutput struct {
	Snapshot *models.RoundSnapshot
}

// GetSnapshotInput is the input for GetSnapshot
type GetSnapshotInput struct{}

// GetSnapshotOutput is the output for GetSnapshot
type GetSnapshotOutput struct {
	Snapshot *models.RoundSnapshot
}

// GetSummaryInput is the input for GetSummary
type GetSummaryInput struct{}

// GetSummaryOutput is the output for GetSummary, Summary is nil until it is visible
type GetSummaryOutput struct {
	Summary *models.RoundSummary
}
