package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/models"
)

// Relay frame types
const (
	frameSetUniqueID        = "setUniqueId"
	frameChat               = "chat"
	frameTikTokConnected    = "tiktokConnected"
	frameTikTokDisconnected = "tiktokDisconnected"
	frameStreamEnd          = "streamEnd"
)

const (
	defaultMinBackoff = time.Second
	defaultMaxBackoff = 30 * time.Second
)

// RelayConfig holds configuration for the live stream relay source
type RelayConfig struct {
	// URL of the relay websocket, e.g. ws://localhost:8081/ws
	URL string

	// UniqueID is the streamer handle to attach to
	UniqueID string

	// Dialer defaults to websocket.DefaultDialer
	Dialer *websocket.Dialer

	// Clock stamps received messages
	Clock clock.Clock

	MinBackoff time.Duration
	MaxBackoff time.Duration

	// Buffer is the capacity of the messages channel
	Buffer int
}

// relayFrame is the envelope of every relay message
type relayFrame struct {
	Type     string          `json:"type"`
	UniqueID string          `json:"uniqueId,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// relayChat is the payload of a chat frame
type relayChat struct {
	UniqueID          string `json:"uniqueId"`
	Nickname          string `json:"nickname"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Comment           string `json:"comment"`
	MsgID             string `json:"msgId"`
}

// Relay reads chat from a websocket relay in front of a live stream connector
type Relay struct {
	url      string
	uniqueID string
	dialer   *websocket.Dialer
	clock    clock.Clock
	minWait  time.Duration
	maxWait  time.Duration

	messages  chan *models.ChatMessage
	connected atomic.Bool
}

// NewRelay creates a relay source
func NewRelay(cfg *RelayConfig) (*Relay, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.URL == "" {
		return nil, ErrEmptyURL
	}
	if cfg.UniqueID == "" {
		return nil, ErrEmptyUniqueID
	}

	r := &Relay{
		url:      cfg.URL,
		uniqueID: cfg.UniqueID,
		dialer:   cfg.Dialer,
		clock:    cfg.Clock,
		minWait:  cfg.MinBackoff,
		maxWait:  cfg.MaxBackoff,
	}
	if r.dialer == nil {
		r.dialer = websocket.DefaultDialer
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	if r.minWait <= 0 {
		r.minWait = defaultMinBackoff
	}
	if r.maxWait < r.minWait {
		r.maxWait = defaultMaxBackoff
	}

	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	r.messages = make(chan *models.ChatMessage, buffer)

	return r, nil
}

// Messages implements Source
func (r *Relay) Messages() <-chan *models.ChatMessage {
	return r.messages
}

// Connected implements Source
func (r *Relay) Connected() bool {
	return r.connected.Load()
}

// Run keeps a relay session open until ctx is done, reconnecting with
// exponential backoff. The messages channel is closed on return.
func (r *Relay) Run(ctx context.Context) error {
	defer close(r.messages)

	wait := r.minWait
	for {
		started := time.Now()
		err := r.session(ctx)
		if ctx.Err() != nil {
			return nil
		}

		// a session that stayed up for a while resets the backoff
		if time.Since(started) > r.maxWait {
			wait = r.minWait
		}

		log.Warn().Err(err).Str("url", r.url).Dur("retry_in", wait).Msg("relay session ended")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}

		wait *= 2
		if wait > r.maxWait {
			wait = r.maxWait
		}
	}
}

func (r *Relay) session(ctx context.Context) error {
	conn, _, err := r.dialer.DialContext(ctx, r.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial relay: %w", err)
	}
	defer conn.Close()
	defer r.connected.Store(false)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(relayFrame{Type: frameSetUniqueID, UniqueID: r.uniqueID}); err != nil {
		return fmt.Errorf("failed to attach to %s: %w", r.uniqueID, err)
	}

	log.Info().Str("url", r.url).Str("unique_id", r.uniqueID).Msg("relay connected")

	for {
		var frame relayFrame
		if err := conn.ReadJSON(&frame); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				continue
			}
			return err
		}

		if !r.handle(ctx, &frame) {
			return ctx.Err()
		}
	}
}

// handle applies one frame, returning false when ctx ended while delivering
func (r *Relay) handle(ctx context.Context, frame *relayFrame) bool {
	switch frame.Type {
	case frameTikTokConnected:
		r.connected.Store(true)
		log.Info().Str("unique_id", r.uniqueID).Msg("live stream connected")
	case frameTikTokDisconnected, frameStreamEnd:
		r.connected.Store(false)
		log.Info().Str("unique_id", r.uniqueID).Str("reason", frame.Type).Msg("live stream disconnected")
	case frameChat:
		var c relayChat
		if err := json.Unmarshal(frame.Data, &c); err != nil {
			log.Debug().Err(err).Msg("dropping malformed chat frame")
			return true
		}
		return deliver(ctx, r.messages, &models.ChatMessage{
			ID: c.MsgID,
			Author: &models.Player{
				ID:          c.UniqueID,
				DisplayName: c.Nickname,
				AvatarURL:   c.ProfilePictureURL,
			},
			Text:       c.Comment,
			ReceivedAt: r.clock.Now(),
		})
	}
	return true
}
