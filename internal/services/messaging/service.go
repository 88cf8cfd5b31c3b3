package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/wordlive/internal/models"
)

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig MessagingError = "config cannot be nil"
	ErrNilInput  MessagingError = "input cannot be nil"
)

const timeoutTitle = "TIME'S UP!"

var winTitles = []string{
	"🎉 WINNER! 🎉",
	"🏆 CHAMPION! 🏆",
	"✨ NAILED IT! ✨",
	"🎯 BULLSEYE! 🎯",
}

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRoundMessage returns the status line for the current round state
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var message string
	switch {
	case input.GenerationFailed:
		message = "Word generation failed. Retrying shortly..."
	case input.State == models.RoundStateLoading || input.State == models.RoundStateRestarting:
		message = "Generating a new word..."
	case input.Outcome == models.RoundOutcomeTimeout:
		message = fmt.Sprintf("TIME'S UP! The word was %s", input.Word)
	case input.Outcome == models.RoundOutcomeWin:
		message = fmt.Sprintf("SOLVED! %s guessed the word!", input.WinnerName)
	}

	return &GetRoundMessageOutput{
		Message: message,
	}, nil
}

// GetSummaryTitle picks a heading for the round summary.
// Win titles rotate at random, the timeout title is fixed.
func (s *service) GetSummaryTitle(ctx context.Context, input *GetSummaryTitleInput) (*GetSummaryTitleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Outcome != models.RoundOutcomeWin {
		return &GetSummaryTitleOutput{
			Title: timeoutTitle,
		}, nil
	}

	s.mu.Lock()
	title := winTitles[s.rand.Intn(len(winTitles))]
	s.mu.Unlock()

	return &GetSummaryTitleOutput{
		Title: title,
	}, nil
}

// GetInvalidWordMessage returns the text of a validation notice
func (s *service) GetInvalidWordMessage(ctx context.Context, input *GetInvalidWordMessageInput) (*GetInvalidWordMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetInvalidWordMessageOutput{
		Message: fmt.Sprintf("%s is not a valid word! (from %s)", input.Word, input.PlayerName),
	}, nil
}

// GetHintMessage returns the call to action shown under the grid
func (s *service) GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	message := "Connect to the live stream to start!"
	if input.Connected {
		message = "The first valid word from chat becomes a guess!"
	}

	return &GetHintMessageOutput{
		Message: message,
	}, nil
}
