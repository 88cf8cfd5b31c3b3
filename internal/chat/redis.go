package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/models"
)

// RedisConfig holds configuration for the Redis pub/sub source
type RedisConfig struct {
	RedisClient *redis.Client

	// Channel carries chat messages as JSON encoded models.ChatMessage
	Channel string

	// Clock stamps messages published without a receive time
	Clock clock.Clock

	// Buffer is the capacity of the messages channel
	Buffer int
}

// RedisSource reads chat messages published on a Redis channel
type RedisSource struct {
	client  *redis.Client
	channel string
	clock   clock.Clock

	messages  chan *models.ChatMessage
	connected atomic.Bool
}

// NewRedis creates a Redis pub/sub source
func NewRedis(cfg *RedisConfig) (*RedisSource, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}
	if cfg.Channel == "" {
		return nil, ErrEmptyChannel
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &RedisSource{
		client:   cfg.RedisClient,
		channel:  cfg.Channel,
		clock:    c,
		messages: make(chan *models.ChatMessage, buffer),
	}, nil
}

// Messages implements Source
func (s *RedisSource) Messages() <-chan *models.ChatMessage {
	return s.messages
}

// Connected implements Source
func (s *RedisSource) Connected() bool {
	return s.connected.Load()
}

// Run subscribes to the channel and forwards messages until ctx is done.
// The messages channel is closed on return.
func (s *RedisSource) Run(ctx context.Context) error {
	defer close(s.messages)

	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	s.connected.Store(true)
	defer s.connected.Store(false)
	log.Info().Str("channel", s.channel).Msg("redis chat source subscribed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}

			var msg models.ChatMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				log.Debug().Err(err).Str("channel", s.channel).Msg("dropping malformed chat payload")
				continue
			}
			if msg.ReceivedAt.IsZero() {
				msg.ReceivedAt = s.clock.Now()
			}

			if !deliver(ctx, s.messages, &msg) {
				return nil
			}
		}
	}
}
