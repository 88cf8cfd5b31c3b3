package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/models"
	"github.com/KirkDiggler/wordlive/internal/services/game"
	"github.com/KirkDiggler/wordlive/internal/services/leaderboard"
)

// OverlayError is a custom error type for overlay server errors
type OverlayError string

// Error implements the error interface
func (e OverlayError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      OverlayError = "config cannot be nil"
	ErrNilGameService OverlayError = "game service cannot be nil"
	ErrNilLeaderboard OverlayError = "leaderboard service cannot be nil"
	ErrNilHub         OverlayError = "hub cannot be nil"
	ErrInvalidPort    OverlayError = "port must be between 1 and 65535"
	ErrHubStopped     OverlayError = "hub is stopped"
)

const timeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the overlay is loaded from streaming software on any origin
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Config holds the dependencies of the overlay server
type Config struct {
	GameService        game.Service
	LeaderboardService leaderboard.Service
	Hub                *Hub

	Bind string
	Port int
}

// Server exposes the overlay websocket and JSON API
type Server struct {
	game        game.Service
	leaderboard leaderboard.Service
	hub         *Hub
	addr        string
	router      *httprouter.Router
}

// StateResponse is the body of GET /api/state
type StateResponse struct {
	Snapshot *models.RoundSnapshot `json:"snapshot"`
	Summary  *models.RoundSummary  `json:"summary,omitempty"`
}

// LeaderboardResponse is the body of GET /api/leaderboard
type LeaderboardResponse struct {
	Entries []*models.LeaderboardEntry `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates the overlay server and its routes
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.LeaderboardService == nil {
		return nil, ErrNilLeaderboard
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	s := &Server{
		game:        cfg.GameService,
		leaderboard: cfg.LeaderboardService,
		hub:         cfg.Hub,
		addr:        net.JoinHostPort(cfg.Bind, strconv.Itoa(cfg.Port)),
		router:      httprouter.New(),
	}

	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		log.Error().Interface("panic", v).Str("path", r.URL.Path).Msg("overlay handler panicked")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	s.router.GET("/ws", s.serveWS)
	s.router.GET("/api/state", s.serveState)
	s.router.GET("/api/leaderboard", s.serveLeaderboard)
	s.router.POST("/api/new-game", s.serveNewGame)
	s.router.GET("/healthz", s.serveHealthCheck)

	return s, nil
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: timeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("overlay listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	log.Debug().Str("remote", r.RemoteAddr).Msg("overlay connected")
	s.hub.serve(conn)
}

func (s *Server) serveState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snap, err := s.game.GetSnapshot(r.Context(), &game.GetSnapshotInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.game.GetSummary(r.Context(), &game.GetSummaryInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StateResponse{
		Snapshot: snap.Snapshot,
		Summary:  summary.Summary,
	})
}

func (s *Server) serveLeaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.leaderboard.GetTopEntries(r.Context(), &leaderboard.GetTopEntriesInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	entries := out.Entries
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
}

func (s *Server) serveNewGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.RequestRestart(r.Context(), &game.RequestRestartInput{
		RequestedBy: "overlay",
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, StateResponse{Snapshot: out.Snapshot})
}

func (s *Server) serveHealthCheck(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, game.ErrNotRunning) {
		status = http.StatusServiceUnavailable
	}
	log.Error().Err(err).Int("status", status).Msg("overlay request failed")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
