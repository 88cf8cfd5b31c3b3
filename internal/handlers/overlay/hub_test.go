package overlay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/models"
)

type received struct {
	Type    events.Type     `json:"type"`
	RoundID string          `json:"roundId"`
	Payload json.RawMessage `json:"payload"`
}

type HubTestSuite struct {
	suite.Suite
	ctx    context.Context
	cancel context.CancelFunc
	hub    *Hub
	server *httptest.Server
}

func (s *HubTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.hub = NewHub()
	go s.hub.Run(s.ctx)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.hub.serve(conn)
	}))
}

func (s *HubTestSuite) TearDownTest() {
	s.cancel()
	s.server.Close()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) connect() *websocket.Conn {
	before := s.hub.ClientCount()
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.Require().Eventually(func() bool {
		return s.hub.ClientCount() > before
	}, time.Second, 5*time.Millisecond)
	return conn
}

func (s *HubTestSuite) read(conn *websocket.Conn) received {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var msg received
	s.Require().NoError(conn.ReadJSON(&msg))
	return msg
}

func (s *HubTestSuite) publish(t events.Type, roundID string, payload any) {
	s.Require().NoError(s.hub.Publish(s.ctx, &events.Event{
		Type:    t,
		RoundID: roundID,
		Payload: payload,
	}))
}

func (s *HubTestSuite) TestBroadcastsToConnectedClients() {
	conn := s.connect()

	s.publish(events.TypeRoundSnapshot, "round-1", &models.RoundSnapshot{
		RoundID: "round-1",
		State:   models.RoundStateActive,
	})

	msg := s.read(conn)
	s.Equal(events.TypeRoundSnapshot, msg.Type)

	var snap models.RoundSnapshot
	s.Require().NoError(json.Unmarshal(msg.Payload, &snap))
	s.Equal(models.RoundStateActive, snap.State)
}

func (s *HubTestSuite) TestReplaysLatestToNewClient() {
	s.publish(events.TypeRoundSnapshot, "round-1", &models.RoundSnapshot{RoundID: "round-1", State: models.RoundStateActive, GuessCount: 1})
	s.publish(events.TypeLeaderboard, "", &events.LeaderboardPayload{})
	s.publish(events.TypeRoundSnapshot, "round-1", &models.RoundSnapshot{RoundID: "round-1", State: models.RoundStateActive, GuessCount: 2})

	conn := s.connect()

	s.Equal(events.TypeLeaderboard, s.read(conn).Type)

	msg := s.read(conn)
	s.Equal(events.TypeRoundSnapshot, msg.Type)
	var snap models.RoundSnapshot
	s.Require().NoError(json.Unmarshal(msg.Payload, &snap))
	s.Equal(2, snap.GuessCount)
}

func (s *HubTestSuite) TestClearedNoticeIsNotReplayed() {
	s.publish(events.TypeRoundSnapshot, "round-1", &models.RoundSnapshot{RoundID: "round-1", State: models.RoundStateActive})
	s.publish(events.TypeValidationNotice, "round-1", &models.ValidationNotice{Word: "ABCDE"})
	s.publish(events.TypeNoticeCleared, "round-1", nil)

	conn := s.connect()
	s.Equal(events.TypeRoundSnapshot, s.read(conn).Type)

	s.publish(events.TypeLeaderboard, "", &events.LeaderboardPayload{})
	s.Equal(events.TypeLeaderboard, s.read(conn).Type)
}

func (s *HubTestSuite) TestNewRoundDropsCachedSummary() {
	s.publish(events.TypeRoundSnapshot, "round-1", &models.RoundSnapshot{RoundID: "round-1", State: models.RoundStateEnded})
	s.publish(events.TypeRoundSummary, "round-1", &models.RoundSummary{RoundID: "round-1", Word: "CRANE"})

	conn := s.connect()
	s.Equal(events.TypeRoundSnapshot, s.read(conn).Type)
	s.Equal(events.TypeRoundSummary, s.read(conn).Type)

	s.publish(events.TypeRoundSnapshot, "round-2", &models.RoundSnapshot{RoundID: "round-2", State: models.RoundStateLoading})
	s.Equal("round-2", s.read(conn).RoundID)

	late := s.connect()
	msg := s.read(late)
	s.Equal(events.TypeRoundSnapshot, msg.Type)
	s.Equal("round-2", msg.RoundID)

	s.publish(events.TypeLeaderboard, "", &events.LeaderboardPayload{})
	s.Equal(events.TypeLeaderboard, s.read(late).Type)
}

func (s *HubTestSuite) TestSlowClientIsDropped() {
	c := &client{send: make(chan []byte, 1)}
	s.hub.register <- c
	s.Eventually(func() bool {
		return s.hub.ClientCount() == 1
	}, time.Second, 5*time.Millisecond)

	s.publish(events.TypeLeaderboard, "", &events.LeaderboardPayload{})
	s.publish(events.TypeLeaderboard, "", &events.LeaderboardPayload{})

	s.Eventually(func() bool {
		return s.hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, ok := <-c.send
	s.True(ok)
	_, ok = <-c.send
	s.False(ok)
}

func (s *HubTestSuite) TestPublishAfterStop() {
	s.NoError(s.hub.Publish(s.ctx, nil))

	s.cancel()
	s.Eventually(func() bool {
		return s.hub.Publish(context.Background(), &events.Event{Type: events.TypeLeaderboard}) == ErrHubStopped
	}, time.Second, 5*time.Millisecond)
}
