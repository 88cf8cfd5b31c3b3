package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/models"
)

type RelayTestSuite struct {
	suite.Suite
	server *httptest.Server
	clock  *clock.Fake

	mu       sync.Mutex
	attached []string

	// frames are written to each client after it attaches
	frames          []string
	dropAfterFrames bool
	hold            chan struct{}
}

func (s *RelayTestSuite) SetupTest() {
	s.clock = clock.NewFake(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC))
	s.attached = nil
	s.frames = nil
	s.dropAfterFrames = false
	s.hold = make(chan struct{})

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var frame relayFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		s.mu.Lock()
		s.attached = append(s.attached, frame.Type+":"+frame.UniqueID)
		frames := s.frames
		drop := s.dropAfterFrames
		s.mu.Unlock()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		if drop {
			return
		}
		<-s.hold
	}))
}

func (s *RelayTestSuite) TearDownTest() {
	close(s.hold)
	s.server.Close()
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}

func (s *RelayTestSuite) serve(drop bool, frames ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = frames
	s.dropAfterFrames = drop
}

func (s *RelayTestSuite) newRelay() *Relay {
	relay, err := NewRelay(&RelayConfig{
		URL:        "ws" + strings.TrimPrefix(s.server.URL, "http"),
		UniqueID:   "streamer",
		Clock:      s.clock,
		MinBackoff: 10 * time.Millisecond,
		MaxBackoff: 20 * time.Millisecond,
	})
	s.Require().NoError(err)
	return relay
}

func (s *RelayTestSuite) receive(relay *Relay) *models.ChatMessage {
	select {
	case msg := <-relay.Messages():
		return msg
	case <-time.After(2 * time.Second):
		s.FailNow("no chat message received")
		return nil
	}
}

func (s *RelayTestSuite) TestNewRelayValidatesConfig() {
	_, err := NewRelay(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRelay(&RelayConfig{UniqueID: "x"})
	s.ErrorIs(err, ErrEmptyURL)

	_, err = NewRelay(&RelayConfig{URL: "ws://localhost"})
	s.ErrorIs(err, ErrEmptyUniqueID)
}

func (s *RelayTestSuite) TestForwardsChatAndTracksConnection() {
	s.serve(false,
		`{"type":"tiktokConnected","data":{"roomId":"1"}}`,
		`not json`,
		`{"type":"chat","data":{"uniqueId":"u1","nickname":"Alice","profilePictureUrl":"https://example.com/a.png","comment":"crane","msgId":"m1"}}`,
	)

	relay := s.newRelay()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- relay.Run(ctx) }()

	msg := s.receive(relay)
	s.Equal("m1", msg.ID)
	s.Equal("crane", msg.Text)
	s.Equal(&models.Player{ID: "u1", DisplayName: "Alice", AvatarURL: "https://example.com/a.png"}, msg.Author)
	s.Equal(s.clock.Now(), msg.ReceivedAt)
	s.True(relay.Connected())

	s.mu.Lock()
	s.Equal([]string{"setUniqueId:streamer"}, s.attached)
	s.mu.Unlock()

	cancel()
	select {
	case err := <-errCh:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("relay did not stop")
	}
	s.False(relay.Connected())

	_, open := <-relay.Messages()
	s.False(open)
}

func (s *RelayTestSuite) TestStreamEndDisconnects() {
	s.serve(false,
		`{"type":"tiktokConnected"}`,
		`{"type":"streamEnd"}`,
		`{"type":"chat","data":{"uniqueId":"u1","nickname":"Alice","comment":"after","msgId":"m2"}}`,
	)

	relay := s.newRelay()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relay.Run(ctx)

	msg := s.receive(relay)
	s.Equal("after", msg.Text)
	s.False(relay.Connected())
}

func (s *RelayTestSuite) TestReconnectsAfterServerCloses() {
	s.serve(true,
		`{"type":"chat","data":{"uniqueId":"u1","nickname":"Alice","comment":"first","msgId":"m1"}}`,
	)

	relay := s.newRelay()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relay.Run(ctx)

	s.Equal("first", s.receive(relay).Text)
	s.Equal("first", s.receive(relay).Text)

	s.mu.Lock()
	s.GreaterOrEqual(len(s.attached), 2)
	s.mu.Unlock()
}
