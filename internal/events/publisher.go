package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/wordlive/internal/events Publisher

import (
	"context"
	"errors"
)

// Publisher delivers events to presentation
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

// Multi fans an event out to every publisher
type Multi []Publisher

// Publish tries every publisher and joins their errors
func (m Multi) Publish(ctx context.Context, event *Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every event
type Discard struct{}

// Publish implements Publisher
func (Discard) Publish(context.Context, *Event) error {
	return nil
}
