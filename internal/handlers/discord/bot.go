package discord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/models"
)

// DiscordError is a custom error type for Discord handler errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         DiscordError = "config cannot be nil"
	ErrEmptyToken        DiscordError = "token cannot be empty"
	ErrEmptyChannelID    DiscordError = "channel id cannot be empty"
	ErrNilGameService    DiscordError = "game service cannot be nil"
	ErrNilLeaderboard    DiscordError = "leaderboard service cannot be nil"
	ErrNilSender         DiscordError = "message sender cannot be nil"
	ErrUnknownSubcommand DiscordError = "unknown subcommand"
	ErrSummaryQueueFull  DiscordError = "summary queue is full"
)

const (
	defaultBuffer = 64
	summaryBuffer = 8
)

// Bot represents the Discord bot instance. It is also the chat source for
// the configured channel.
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	clock      clock.Clock

	summaries *SummaryPublisher

	messages  chan *models.ChatMessage
	done      chan struct{}
	closeOnce sync.Once
	sendMu    sync.RWMutex
	connected atomic.Bool
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ChannelID is the channel whose messages become guesses
	ChannelID string

	// Clock stamps received messages, defaults to the wall clock
	Clock clock.Clock

	// Buffer sizes the message channel
	Buffer int
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}
	if cfg.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := newBot(cfg)
	bot.session = session
	bot.summaries = newSummaryPublisher(session, cfg.ChannelID)

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleResumed)
	session.AddHandler(bot.handleDisconnect)

	return bot, nil
}

func newBot(cfg *Config) *Bot {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &Bot{
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		clock:      c,
		messages:   make(chan *models.ChatMessage, buffer),
		done:       make(chan struct{}),
	}
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start(commands ...CommandHandler) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Info().Str("channel_id", b.config.ChannelID).Msg("discord bot is running")
	return nil
}

// Stop removes registered commands, closes the connection and the message channel
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		}
	}

	b.closeMessages()
	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// An empty guild id registers the command globally
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

// Messages implements chat.Source
func (b *Bot) Messages() <-chan *models.ChatMessage {
	return b.messages
}

// Connected implements chat.Source
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// Summaries returns the publisher that posts round summaries to the game
// channel. Its Run must be served for anything to be posted.
func (b *Bot) Summaries() *SummaryPublisher {
	return b.summaries
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Error().Err(err).Str("command", name).Msg("error handling command")
		}
	}
}

// handleMessageCreate forwards messages posted in the game channel
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	msg := b.toChatMessage(sessionUserID(s), m)
	if msg == nil {
		return
	}

	b.sendMu.RLock()
	defer b.sendMu.RUnlock()
	select {
	case <-b.done:
	case b.messages <- msg:
	}
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.connected.Store(true)
	if r.User != nil {
		log.Info().Str("user", r.User.Username).Msg("discord connected")
	}
}

func (b *Bot) handleResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	b.connected.Store(true)
	log.Info().Msg("discord session resumed")
}

func (b *Bot) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.connected.Store(false)
	log.Warn().Msg("discord disconnected")
}

// toChatMessage converts a channel message, nil when it is not a guess candidate
func (b *Bot) toChatMessage(selfID string, m *discordgo.MessageCreate) *models.ChatMessage {
	if m == nil || m.Message == nil || m.Author == nil {
		return nil
	}
	if m.ChannelID != b.config.ChannelID || m.Author.Bot || m.Author.ID == selfID {
		return nil
	}

	nick := ""
	if m.Member != nil {
		nick = m.Member.Nick
	}

	return &models.ChatMessage{
		ID: m.ID,
		Author: &models.Player{
			ID:          m.Author.ID,
			DisplayName: displayName(nick, m.Author),
			AvatarURL:   avatarURL(m.Author),
		},
		Text:       m.Content,
		ReceivedAt: b.clock.Now(),
	}
}

func (b *Bot) closeMessages() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.sendMu.Lock()
		close(b.messages)
		b.sendMu.Unlock()
	})
}

func sessionUserID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

// MessageSender posts embeds to a channel
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SummaryPublisher posts each round summary as an embed. Publish only queues
// the summary, Run does the posting so a slow Discord API never blocks the
// caller.
type SummaryPublisher struct {
	sender    MessageSender
	channelID string
	queue     chan *models.RoundSummary
}

// NewSummaryPublisher creates a publisher posting to channelID
func NewSummaryPublisher(sender MessageSender, channelID string) (*SummaryPublisher, error) {
	if sender == nil {
		return nil, ErrNilSender
	}
	if channelID == "" {
		return nil, ErrEmptyChannelID
	}
	return newSummaryPublisher(sender, channelID), nil
}

func newSummaryPublisher(sender MessageSender, channelID string) *SummaryPublisher {
	return &SummaryPublisher{
		sender:    sender,
		channelID: channelID,
		queue:     make(chan *models.RoundSummary, summaryBuffer),
	}
}

// Publish implements events.Publisher, ignoring everything but summaries
func (p *SummaryPublisher) Publish(_ context.Context, event *events.Event) error {
	if event == nil || event.Type != events.TypeRoundSummary {
		return nil
	}
	summary, ok := event.Payload.(*models.RoundSummary)
	if !ok || summary == nil {
		return nil
	}

	select {
	case p.queue <- summary:
		return nil
	default:
		return ErrSummaryQueueFull
	}
}

// Run posts queued summaries until ctx is done
func (p *SummaryPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case summary := <-p.queue:
			if _, err := p.sender.ChannelMessageSendEmbed(p.channelID, renderSummary(summary)); err != nil {
				log.Error().Err(err).Str("round_id", summary.RoundID).Msg("failed to post round summary")
			}
		}
	}
}
