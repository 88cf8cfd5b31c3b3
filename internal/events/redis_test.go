package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wordlive/internal/models"
)

type RedisPublisherTestSuite struct {
	suite.Suite
	ctx       context.Context
	mr        *miniredis.Miniredis
	client    *redis.Client
	publisher *redisPublisher
}

func (s *RedisPublisherTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	publisher, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
		Channel:     "wordlive:events",
	})
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *RedisPublisherTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(RedisPublisherTestSuite))
}

func (s *RedisPublisherTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&RedisConfig{Channel: "c"})
	s.ErrorIs(err, ErrNilRedisClient)

	_, err = NewRedis(&RedisConfig{RedisClient: s.client})
	s.ErrorIs(err, ErrEmptyChannel)
}

func (s *RedisPublisherTestSuite) TestPublishSendsJSON() {
	sub := s.client.Subscribe(s.ctx, "wordlive:events")
	defer sub.Close()

	_, err := sub.Receive(s.ctx)
	s.Require().NoError(err)

	err = s.publisher.Publish(s.ctx, &Event{
		Type:    TypeRoundSummary,
		RoundID: "round-1",
		At:      time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC),
		Payload: &models.RoundSummary{
			RoundID: "round-1",
			Outcome: models.RoundOutcomeTimeout,
			Word:    "CRANE",
		},
	})
	s.Require().NoError(err)

	select {
	case msg := <-sub.Channel():
		var decoded struct {
			Type    Type                `json:"type"`
			RoundID string              `json:"roundId"`
			Payload models.RoundSummary `json:"payload"`
		}
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &decoded))
		s.Equal(TypeRoundSummary, decoded.Type)
		s.Equal("round-1", decoded.RoundID)
		s.Equal("CRANE", decoded.Payload.Word)
	case <-time.After(2 * time.Second):
		s.Fail("event not received")
	}
}

func (s *RedisPublisherTestSuite) TestPublishNilEvent() {
	s.ErrorIs(s.publisher.Publish(s.ctx, nil), ErrNilEvent)
}
