package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EventsError is a custom error type for event publishing errors
type EventsError string

// Error implements the error interface
func (e EventsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      EventsError = "config cannot be nil"
	ErrNilRedisClient EventsError = "redis client cannot be nil"
	ErrEmptyChannel   EventsError = "channel cannot be empty"
	ErrNilEvent       EventsError = "event cannot be nil"
)

// RedisConfig holds configuration for the Redis publisher
type RedisConfig struct {
	RedisClient *redis.Client

	// Channel receives every event as JSON
	Channel string
}

type redisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedis creates a publisher that sends events to a Redis pub/sub channel
func NewRedis(cfg *RedisConfig) (*redisPublisher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}
	if cfg.Channel == "" {
		return nil, ErrEmptyChannel
	}

	return &redisPublisher{
		client:  cfg.RedisClient,
		channel: cfg.Channel,
	}, nil
}

// Publish implements Publisher
func (p *redisPublisher) Publish(ctx context.Context, event *Event) error {
	if event == nil {
		return ErrNilEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}
