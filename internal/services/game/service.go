package game

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/chat"
	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/common/uuid"
	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/models"
	"github.com/KirkDiggler/wordlive/internal/scoring"
	"github.com/KirkDiggler/wordlive/internal/services/leaderboard"
	"github.com/KirkDiggler/wordlive/internal/services/lexicon"
	"github.com/KirkDiggler/wordlive/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	lexicon     lexicon.Service
	leaderboard leaderboard.Service
	messaging   messaging.Service
	source      chat.Source
	publisher   events.Publisher
	clock       clock.Clock
	uuid        uuid.UUID

	wordLength     int
	roundDuration  time.Duration
	summaryDelay   time.Duration
	restartDelay   time.Duration
	noticeDuration time.Duration
	guessCooldown  time.Duration
	recentLimit    int
	backlogLimit   int

	loop *loop

	// Everything below is owned by the loop
	round       *roundSession
	lastMessage *models.ChatMessage
	notice      *models.ValidationNotice
	noticeTimer *roundTimer
}

// NewService creates a new game engine
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Lexicon == nil {
		return nil, ErrNilLexicon
	}
	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Source == nil {
		return nil, ErrNilSource
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	s := &service{
		lexicon:        cfg.Lexicon,
		leaderboard:    cfg.Leaderboard,
		messaging:      cfg.Messaging,
		source:         cfg.Source,
		publisher:      cfg.Publisher,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
		wordLength:     orInt(cfg.WordLength, DefaultWordLength),
		roundDuration:  orDuration(cfg.RoundDuration, DefaultRoundDuration),
		summaryDelay:   orDuration(cfg.SummaryDelay, DefaultSummaryDelay),
		restartDelay:   orDuration(cfg.RestartDelay, DefaultRestartDelay),
		noticeDuration: orDuration(cfg.NoticeDuration, DefaultNoticeDuration),
		guessCooldown:  orDuration(cfg.GuessCooldown, DefaultGuessCooldown),
		recentLimit:    orInt(cfg.RecentLimit, DefaultRecentLimit),
		backlogLimit:   orInt(cfg.BacklogLimit, DefaultBacklogLimit),
		loop:           newLoop(),
	}
	if s.publisher == nil {
		s.publisher = events.Discard{}
	}

	return s, nil
}

// Run starts the first round and serves chat messages, timer callbacks and
// requests on the calling goroutine until ctx is done. An engine is served
// once; Run after a previous Run returned yields ErrNotRunning.
func (s *service) Run(ctx context.Context) error {
	if err := s.loop.start(); err != nil {
		return err
	}
	defer s.loop.stop()

	s.loop.exec(func() {
		s.publishLeaderboard(ctx)
		s.startRound(ctx)
	})

	messages := s.source.Messages()
	for {
		select {
		case <-ctx.Done():
			s.loop.exec(s.shutdown)
			return nil
		case fn := <-s.loop.inbox:
			s.loop.exec(fn)
		case msg, ok := <-messages:
			if !ok {
				log.Warn().Msg("chat source closed")
				messages = nil
				continue
			}
			s.loop.exec(func() {
				s.handleMessage(ctx, msg)
			})
		}
	}
}

// HandleChatMessage runs a chat message through the guess pipeline
func (s *service) HandleChatMessage(ctx context.Context, input *HandleChatMessageInput) (*HandleChatMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var out *HandleChatMessageOutput
	if err := s.loop.call(ctx, func() {
		out = s.handleMessage(ctx, input.Message)
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestRestart cancels everything pending for the current round and starts a new one
func (s *service) RequestRestart(ctx context.Context, input *RequestRestartInput) (*RequestRestartOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var snapshot *models.RoundSnapshot
	if err := s.loop.call(ctx, func() {
		log.Info().Str("requested_by", input.RequestedBy).Msg("manual restart")
		s.restart(ctx)
		snapshot = s.snapshot(ctx)
	}); err != nil {
		return nil, err
	}

	return &RequestRestartOutput{
		Snapshot: snapshot,
	}, nil
}

// GetSnapshot returns a read-only projection of the current round
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var snapshot *models.RoundSnapshot
	if err := s.loop.call(ctx, func() {
		snapshot = s.snapshot(ctx)
	}); err != nil {
		return nil, err
	}

	return &GetSnapshotOutput{
		Snapshot: snapshot,
	}, nil
}

// GetSummary returns the summary of the current round once it is visible
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &GetSummaryOutput{}
	if err := s.loop.call(ctx, func() {
		if s.round != nil && s.round.summarized != nil {
			summary := *s.round.summarized
			out.Summary = &summary
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// startRound replaces the current round with a fresh one and asks the
// lexicon for its word. A failed lookup leaves the round loading and
// schedules a retry.
func (s *service) startRound(ctx context.Context) {
	if s.round != nil {
		s.round.teardown()
	}

	r := newRoundSession(s.uuid.NewUUID(), s.recentLimit, s.clock.Now())
	s.round = r
	s.publishSnapshot(ctx)

	out, err := s.lexicon.RandomWord(ctx, &lexicon.RandomWordInput{
		Length: s.wordLength,
	})
	if err != nil {
		log.Error().Err(err).Str("round_id", r.id).Dur("retry_in", s.restartDelay).Msg("word generation failed")
		r.generationFailed = true
		r.retry = s.schedule(r, s.restartDelay, func() {
			s.restart(context.Background())
		})
		s.publishSnapshot(ctx)
		return
	}

	r.word = strings.ToUpper(out.Word)
	r.state = models.RoundStateActive
	r.remaining = int(s.roundDuration / tickInterval)
	r.tick = s.schedule(r, tickInterval, func() {
		s.onTick(context.Background())
	})

	log.Info().Str("round_id", r.id).Int("word_length", len(r.word)).Int("seconds", r.remaining).Msg("round started")
	log.Debug().Str("round_id", r.id).Str("word", r.word).Msg("round word")

	s.publishSnapshot(ctx)
}

// restart tears the current round down and starts the next one
func (s *service) restart(ctx context.Context) {
	if s.round != nil {
		s.round.teardown()
		s.round.state = models.RoundStateRestarting
		s.publishSnapshot(ctx)
	}
	s.startRound(ctx)
}

// onTick counts the active round down by one second
func (s *service) onTick(ctx context.Context) {
	r := s.round
	if !r.accepting() {
		return
	}

	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		s.endRound(ctx, models.RoundOutcomeTimeout, nil)
		return
	}

	r.tick = s.schedule(r, tickInterval, func() {
		s.onTick(context.Background())
	})
	s.publishSnapshot(ctx)
}

// endRound moves the active round to Ended. Only the first trigger of a
// round has any effect.
func (s *service) endRound(ctx context.Context, outcome models.RoundOutcome, winner *models.Player) {
	r := s.round
	if r == nil || r.ended || r.state != models.RoundStateActive {
		return
	}
	r.ended = true

	r.stopPlay()
	r.state = models.RoundStateEnded
	r.outcome = outcome
	r.endedAt = s.clock.Now()
	if outcome == models.RoundOutcomeWin {
		r.winner = winner
	}

	logEvent := log.Info().Str("round_id", r.id).Str("outcome", string(outcome)).Str("word", r.word).Int("guesses", r.tracker.Count())
	if r.winner != nil {
		logEvent = logEvent.Str("winner_id", r.winner.ID)
	}
	logEvent.Msg("round ended")

	if r.winner != nil {
		s.recordWin(ctx, *r.winner)
	}

	s.publishSnapshot(ctx)

	r.summary = s.schedule(r, s.summaryDelay, func() {
		s.showSummary(context.Background())
	})
}

func (s *service) recordWin(ctx context.Context, winner models.Player) {
	out, err := s.leaderboard.RecordWin(ctx, &leaderboard.RecordWinInput{
		Player: winner,
	})
	if err != nil {
		log.Error().Err(err).Str("player_id", winner.ID).Msg("failed to record win")
		return
	}

	s.publish(ctx, events.TypeLeaderboard, &events.LeaderboardPayload{
		Entries: out.Top,
	})
}

// showSummary reveals the round summary and schedules the automatic restart
func (s *service) showSummary(ctx context.Context) {
	r := s.round
	if r.state != models.RoundStateEnded || r.summarized != nil {
		return
	}

	summary := &models.RoundSummary{
		RoundID:     r.id,
		Outcome:     r.outcome,
		Word:        r.word,
		Definitions: []string{messaging.DefinitionNotFound},
		Examples:    []string{},
		GuessCount:  r.tracker.Count(),
	}
	if r.winner != nil {
		winner := *r.winner
		summary.Winner = &winner
	}

	title, err := s.messaging.GetSummaryTitle(ctx, &messaging.GetSummaryTitleInput{
		Outcome: r.outcome,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get summary title")
	} else {
		summary.Title = title.Title
	}

	def, err := s.lexicon.GetDefinition(ctx, &lexicon.GetDefinitionInput{
		Word: r.word,
	})
	switch {
	case err != nil:
		log.Warn().Err(err).Str("word", r.word).Msg("definition lookup failed")
	case def.Definition != nil:
		if len(def.Definition.Meanings) > 0 {
			summary.Definitions = append([]string(nil), def.Definition.Meanings...)
		}
		summary.Examples = append([]string{}, def.Definition.Examples...)
	}

	r.summarized = summary
	s.publish(ctx, events.TypeRoundSummary, summary)

	r.restart = s.schedule(r, s.restartDelay, func() {
		s.restart(context.Background())
	})
}

// handleMessage filters re-delivered and malformed messages before the guess pipeline
func (s *service) handleMessage(ctx context.Context, msg *models.ChatMessage) *HandleChatMessageOutput {
	if msg == nil {
		return &HandleChatMessageOutput{Result: GuessResultMalformed}
	}
	if s.isRedelivery(msg) {
		return &HandleChatMessageOutput{Result: GuessResultDuplicateMessage}
	}
	s.lastMessage = msg

	if !msg.Valid() {
		return &HandleChatMessageOutput{Result: GuessResultMalformed}
	}

	return s.processGuess(ctx, msg)
}

func (s *service) isRedelivery(msg *models.ChatMessage) bool {
	last := s.lastMessage
	if last == nil {
		return false
	}
	return msg == last || (msg.ID != "" && msg.ID == last.ID)
}

// processGuess is the guess acceptance pipeline. Each check short-circuits.
func (s *service) processGuess(ctx context.Context, msg *models.ChatMessage) *HandleChatMessageOutput {
	ignored := &HandleChatMessageOutput{Result: GuessResultIgnored}

	r := s.round
	if !s.source.Connected() || r == nil || !r.accepting() {
		return ignored
	}

	text := strings.TrimSpace(msg.Text)
	if len(text) != s.wordLength || !lexicon.IsAlpha(text) {
		return ignored
	}

	if r.guard {
		if len(r.backlog) >= s.backlogLimit {
			log.Warn().Str("round_id", r.id).Str("player_id", msg.Author.ID).Msg("guess backlog full, dropping message")
			return ignored
		}
		r.backlog = append(r.backlog, msg)
		return &HandleChatMessageOutput{Result: GuessResultQueued}
	}

	word := strings.ToUpper(text)

	valid, err := s.lexicon.ValidateWord(ctx, &lexicon.ValidateWordInput{
		Word: word,
	})
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("word validation failed")
		return ignored
	}
	if !valid.Valid {
		return &HandleChatMessageOutput{
			Result: GuessResultInvalidWord,
			Notice: s.showNotice(ctx, word, msg.Author.Snapshot()),
		}
	}

	if !r.markSeen(word) {
		return &HandleChatMessageOutput{Result: GuessResultDuplicateWord}
	}

	statuses, err := scoring.Evaluate(word, r.word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to score guess")
		return ignored
	}

	guess := models.Guess{
		Word:        word,
		Author:      msg.Author.Snapshot(),
		Statuses:    statuses,
		Score:       scoring.Score(statuses),
		SubmittedAt: s.clock.Now(),
	}
	r.tracker.Record(guess)

	log.Debug().Str("round_id", r.id).Str("player_id", guess.Author.ID).Str("word", word).Int("score", guess.Score).Msg("guess accepted")

	r.guard = true
	r.cooldown = s.schedule(r, s.guessCooldown, func() {
		s.releaseGuard(context.Background())
	})

	out := &HandleChatMessageOutput{
		Result: GuessResultAccepted,
		Guess:  &guess,
	}

	if scoring.IsSolved(statuses) {
		out.Won = true
		author := guess.Author
		s.endRound(ctx, models.RoundOutcomeWin, &author)
		return out
	}

	s.publishSnapshot(ctx)
	return out
}

// releaseGuard ends the cooldown and replays queued messages in arrival order
// until one of them sets the guard again
func (s *service) releaseGuard(ctx context.Context) {
	r := s.round
	r.guard = false

	for len(r.backlog) > 0 && !r.guard && r.accepting() {
		msg := r.backlog[0]
		r.backlog = r.backlog[1:]
		s.processGuess(ctx, msg)
	}
}

// showNotice publishes a validation notice, replacing any notice still showing
func (s *service) showNotice(ctx context.Context, word string, author models.Player) *models.ValidationNotice {
	s.noticeTimer.cancel()

	text := word
	out, err := s.messaging.GetInvalidWordMessage(ctx, &messaging.GetInvalidWordMessageInput{
		Word:       word,
		PlayerName: author.DisplayName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get invalid word message")
	} else {
		text = out.Message
	}

	notice := &models.ValidationNotice{
		Word:      word,
		Player:    author,
		Message:   text,
		ExpiresAt: s.clock.Now().Add(s.noticeDuration),
	}
	s.notice = notice
	s.publish(ctx, events.TypeValidationNotice, notice)

	t := &roundTimer{}
	t.timer = s.clock.AfterFunc(s.noticeDuration, func() {
		s.loop.post(func() {
			if t.cancelled || s.noticeTimer != t {
				return
			}
			s.notice = nil
			s.noticeTimer = nil
			s.publish(context.Background(), events.TypeNoticeCleared, nil)
		})
	})
	s.noticeTimer = t

	copied := *notice
	return &copied
}

// schedule runs fn on the loop after d, unless the timer was cancelled or
// r is no longer the current round by then
func (s *service) schedule(r *roundSession, d time.Duration, fn func()) *roundTimer {
	t := &roundTimer{}
	t.timer = s.clock.AfterFunc(d, func() {
		s.loop.post(func() {
			if t.cancelled || s.round != r {
				return
			}
			fn()
		})
	})
	return t
}

func (s *service) shutdown() {
	if s.round != nil {
		s.round.teardown()
	}
	s.noticeTimer.cancel()
	s.noticeTimer = nil
}

func (s *service) snapshot(ctx context.Context) *models.RoundSnapshot {
	connected := s.source.Connected()
	snapshot := &models.RoundSnapshot{
		State:         models.RoundStateLoading,
		WordLength:    s.wordLength,
		RecentGuesses: []models.Guess{},
		Connected:     connected,
	}

	hint, err := s.messaging.GetHintMessage(ctx, &messaging.GetHintMessageInput{
		Connected: connected,
	})
	if err == nil {
		snapshot.Hint = hint.Message
	}

	r := s.round
	if r == nil {
		return snapshot
	}

	snapshot.RoundID = r.id
	snapshot.State = r.state
	snapshot.Outcome = r.outcome
	snapshot.RemainingSeconds = r.remaining
	snapshot.BestGuess = r.tracker.Best()
	snapshot.RecentGuesses = r.tracker.Recent()
	snapshot.GuessCount = r.tracker.Count()
	if r.state == models.RoundStateEnded {
		snapshot.Word = r.word
	}
	if r.winner != nil {
		winner := *r.winner
		snapshot.Winner = &winner
	}

	input := &messaging.GetRoundMessageInput{
		State:            r.state,
		Outcome:          r.outcome,
		Word:             r.word,
		GenerationFailed: r.generationFailed,
	}
	if r.winner != nil {
		input.WinnerName = r.winner.DisplayName
	}
	message, err := s.messaging.GetRoundMessage(ctx, input)
	if err == nil {
		snapshot.Message = message.Message
	}

	return snapshot
}

func (s *service) publishSnapshot(ctx context.Context) {
	s.publish(ctx, events.TypeRoundSnapshot, s.snapshot(ctx))
}

func (s *service) publishLeaderboard(ctx context.Context) {
	out, err := s.leaderboard.GetTopEntries(ctx, &leaderboard.GetTopEntriesInput{})
	if err != nil {
		log.Warn().Err(err).Msg("failed to load leaderboard")
		return
	}

	s.publish(ctx, events.TypeLeaderboard, &events.LeaderboardPayload{
		Entries: out.Entries,
	})
}

func (s *service) publish(ctx context.Context, t events.Type, payload any) {
	event := &events.Event{
		Type:    t,
		At:      s.clock.Now(),
		Payload: payload,
	}
	if s.round != nil {
		event.RoundID = s.round.id
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", string(t)).Msg("failed to publish event")
	}
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}
