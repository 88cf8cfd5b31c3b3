package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	sourceDiscord = "discord"
	sourceRelay   = "relay"
	sourceRedis   = "redis"

	storeMemory = "memory"
	storeRedis  = "redis"
)

type Config struct {
	source string

	discordToken     string
	discordAppID     string
	discordGuildID   string
	discordChannelID string

	relayURL      string
	relayUniqueID string

	redisAddr          string
	redisPassword      string
	redisDB            int
	redisChatChannel   string
	redisEventsChannel string

	leaderboardStore string

	bind string
	port int

	wordsFile       string
	answersFile     string
	definitionsFile string
	roundDuration   time.Duration

	logLevel  string
	prettyLog bool
	version   bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.roundDuration <= 0 {
		return fmt.Errorf("invalid round duration: %s", c.roundDuration)
	}

	switch c.source {
	case sourceDiscord:
		if c.discordToken == "" || c.discordChannelID == "" {
			return errors.New("--discord-token and --discord-channel-id are required for the discord source")
		}
	case sourceRelay:
		if c.relayURL == "" || c.relayUniqueID == "" {
			return errors.New("--relay-url and --relay-unique-id are required for the relay source")
		}
	case sourceRedis:
		if c.redisChatChannel == "" {
			return errors.New("--redis-chat-channel is required for the redis source")
		}
	default:
		return fmt.Errorf("unknown source %q (must be one of discord, relay, redis)", c.source)
	}

	switch c.leaderboardStore {
	case storeMemory, storeRedis:
	default:
		return fmt.Errorf("unknown leaderboard store %q (must be memory or redis)", c.leaderboardStore)
	}

	if c.needsRedis() && c.redisAddr == "" {
		return errors.New("--redis-addr is required")
	}
	return nil
}

// needsRedis reports whether any component talks to Redis
func (c *Config) needsRedis() bool {
	return c.source == sourceRedis || c.leaderboardStore == storeRedis || c.redisEventsChannel != ""
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDLIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordlive",
		Short:         "Live chat Wordle: viewers guess the word by typing it in chat.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.source, "source", "s", sourceRelay, "chat source: discord, relay or redis (env: WORDLIVE_SOURCE)")
	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token (env: WORDLIVE_DISCORD_TOKEN)")
	fs.StringVar(&cfg.discordAppID, "discord-app-id", "", "discord application id (env: WORDLIVE_DISCORD_APP_ID)")
	fs.StringVar(&cfg.discordGuildID, "discord-guild-id", "", "register commands for this guild only (env: WORDLIVE_DISCORD_GUILD_ID)")
	fs.StringVar(&cfg.discordChannelID, "discord-channel-id", "", "channel whose messages are guesses (env: WORDLIVE_DISCORD_CHANNEL_ID)")
	fs.StringVar(&cfg.relayURL, "relay-url", "ws://localhost:8081", "websocket url of the live stream relay (env: WORDLIVE_RELAY_URL)")
	fs.StringVar(&cfg.relayUniqueID, "relay-unique-id", "", "streamer handle to attach the relay to (env: WORDLIVE_RELAY_UNIQUE_ID)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: WORDLIVE_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: WORDLIVE_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database (env: WORDLIVE_REDIS_DB)")
	fs.StringVar(&cfg.redisChatChannel, "redis-chat-channel", "wordlive:chat", "redis channel carrying chat messages (env: WORDLIVE_REDIS_CHAT_CHANNEL)")
	fs.StringVar(&cfg.redisEventsChannel, "redis-events-channel", "", "publish game events to this redis channel (env: WORDLIVE_REDIS_EVENTS_CHANNEL)")
	fs.StringVar(&cfg.leaderboardStore, "leaderboard-store", storeMemory, "leaderboard storage: memory or redis (env: WORDLIVE_LEADERBOARD_STORE)")
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind the overlay to (env: WORDLIVE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to serve the overlay on (env: WORDLIVE_PORT)")
	fs.StringVar(&cfg.wordsFile, "words-file", "", "extra accepted guesses, one per line (env: WORDLIVE_WORDS_FILE)")
	fs.StringVar(&cfg.answersFile, "answers-file", "", "target words, one per line (env: WORDLIVE_ANSWERS_FILE)")
	fs.StringVar(&cfg.definitionsFile, "definitions-file", "", "json definitions keyed by word (env: WORDLIVE_DEFINITIONS_FILE)")
	fs.DurationVar(&cfg.roundDuration, "round-duration", 300*time.Second, "time allowed per round (env: WORDLIVE_ROUND_DURATION)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (env: WORDLIVE_LOG_LEVEL)")
	fs.BoolVar(&cfg.prettyLog, "pretty-log", false, "human readable console logs (env: WORDLIVE_PRETTY_LOG)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: WORDLIVE_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordlive v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
