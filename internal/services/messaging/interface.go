package messaging

import "context"

// Service produces the player-facing text shown by the overlay and chat adapters
type Service interface {
	// GetRoundMessage returns the status line for the current round state
	GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error)

	// GetSummaryTitle returns the heading of the round summary
	GetSummaryTitle(ctx context.Context, input *GetSummaryTitleInput) (*GetSummaryTitleOutput, error)

	// GetInvalidWordMessage returns the text of a validation notice
	GetInvalidWordMessage(ctx context.Context, input *GetInvalidWordMessageInput) (*GetInvalidWordMessageOutput, error)

	// GetHintMessage returns the call to action shown under the grid
	GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error)
}
