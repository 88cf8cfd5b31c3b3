package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wordlive/internal/models"
)

const (
	// Key prefix for Redis
	boardKeyPrefix = "leaderboard:"

	// DefaultTTL bounds a board to a single streaming session
	DefaultTTL = 12 * time.Hour
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied on every save, zero means DefaultTTL
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed leaderboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// GetEntries reads a board from Redis
func (r *redisRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.BoardID == "" {
		return nil, ErrEmptyBoardID
	}

	boardJSON, err := r.client.Get(ctx, boardKey(input.BoardID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetEntriesOutput{
				Entries: []*models.LeaderboardEntry{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var entries []*models.LeaderboardEntry
	if err := json.Unmarshal([]byte(boardJSON), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return &GetEntriesOutput{
		Entries: entries,
	}, nil
}

// SaveEntries writes a board to Redis and refreshes its expiry
func (r *redisRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.BoardID == "" {
		return ErrEmptyBoardID
	}

	entries := input.Entries
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}

	boardJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, boardKey(input.BoardID), boardJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}

func boardKey(boardID string) string {
	return fmt.Sprintf("%s%s", boardKeyPrefix, boardID)
}
