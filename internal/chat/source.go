// Package chat adapts live chat platforms into a stream of chat messages.
package chat

import (
	"context"

	"github.com/KirkDiggler/wordlive/internal/models"
)

// Source delivers chat messages one at a time
type Source interface {
	// Messages is closed when the source stops
	Messages() <-chan *models.ChatMessage

	// Connected reports whether the source is attached to a live chat
	Connected() bool
}

// ChatError is a custom error type for chat source errors
type ChatError string

// Error implements the error interface
func (e ChatError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      ChatError = "config cannot be nil"
	ErrEmptyURL       ChatError = "relay url cannot be empty"
	ErrEmptyUniqueID  ChatError = "unique id cannot be empty"
	ErrNilRedisClient ChatError = "redis client cannot be nil"
	ErrEmptyChannel   ChatError = "channel cannot be empty"
)

const defaultBuffer = 64

// deliver blocks until the message is queued or ctx is done
func deliver(ctx context.Context, out chan<- *models.ChatMessage, msg *models.ChatMessage) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}
