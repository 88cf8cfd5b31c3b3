package models

import "time"

// ChatMessage is a single message delivered by a chat source
type ChatMessage struct {
	// ID is the platform message id, when the platform provides one
	ID string `json:"id,omitempty"`

	// Author is the player who sent the message
	Author *Player `json:"author"`

	// Text is the raw message text
	Text string `json:"text"`

	// ReceivedAt is when the chat source received the message
	ReceivedAt time.Time `json:"receivedAt"`
}

// Valid reports whether the message has an author and text
func (m *ChatMessage) Valid() bool {
	return m != nil && m.Author != nil && m.Author.ID != "" && m.Text != ""
}
