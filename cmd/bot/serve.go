package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wordlive/internal/chat"
	"github.com/KirkDiggler/wordlive/internal/common/clock"
	"github.com/KirkDiggler/wordlive/internal/common/logging"
	"github.com/KirkDiggler/wordlive/internal/common/uuid"
	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/handlers/discord"
	"github.com/KirkDiggler/wordlive/internal/handlers/overlay"
	leaderboardRepo "github.com/KirkDiggler/wordlive/internal/repositories/leaderboard"
	"github.com/KirkDiggler/wordlive/internal/services/game"
	"github.com/KirkDiggler/wordlive/internal/services/leaderboard"
	"github.com/KirkDiggler/wordlive/internal/services/lexicon"
	"github.com/KirkDiggler/wordlive/internal/services/messaging"
)

// serve wires every component and runs them until ctx is done
func serve(ctx context.Context, cfg *Config) error {
	logging.Setup(cfg.logLevel, cfg.prettyLog)
	log.Info().
		Str("version", releaseVersion).
		Str("source", cfg.source).
		Str("leaderboard_store", cfg.leaderboardStore).
		Msg("starting wordlive")

	var redisClient *redis.Client
	if cfg.needsRedis() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.redisAddr,
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}

	lexiconSvc, err := lexicon.New(&lexicon.Config{
		AnswersFile:     cfg.answersFile,
		AllowedFile:     cfg.wordsFile,
		DefinitionsFile: cfg.definitionsFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create lexicon: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	repo, err := newLeaderboardRepo(cfg, redisClient)
	if err != nil {
		return err
	}

	leaderboardSvc, err := leaderboard.New(&leaderboard.Config{
		Repository: repo,
		UUID:       uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard service: %w", err)
	}
	log.Info().Str("board_id", leaderboardSvc.BoardID()).Msg("leaderboard ready")

	hub := overlay.NewHub()
	publishers := events.Multi{hub}
	if cfg.redisEventsChannel != "" {
		redisPublisher, err := events.NewRedis(&events.RedisConfig{
			RedisClient: redisClient,
			Channel:     cfg.redisEventsChannel,
		})
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}
		publishers = append(publishers, redisPublisher)
	}

	var (
		source    chat.Source
		runSource func(context.Context) error
		bot       *discord.Bot
	)
	switch cfg.source {
	case sourceDiscord:
		bot, err = discord.New(&discord.Config{
			Token:         cfg.discordToken,
			ApplicationID: cfg.discordAppID,
			GuildID:       cfg.discordGuildID,
			ChannelID:     cfg.discordChannelID,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}
		source = bot
		publishers = append(publishers, bot.Summaries())
	case sourceRelay:
		relay, err := chat.NewRelay(&chat.RelayConfig{
			URL:      cfg.relayURL,
			UniqueID: cfg.relayUniqueID,
		})
		if err != nil {
			return fmt.Errorf("failed to create relay source: %w", err)
		}
		source, runSource = relay, relay.Run
	case sourceRedis:
		redisSource, err := chat.NewRedis(&chat.RedisConfig{
			RedisClient: redisClient,
			Channel:     cfg.redisChatChannel,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis source: %w", err)
		}
		source, runSource = redisSource, redisSource.Run
	}

	engine, err := game.NewService(&game.Config{
		Lexicon:       lexiconSvc,
		Leaderboard:   leaderboardSvc,
		Messaging:     messagingSvc,
		Source:        source,
		Publisher:     publishers,
		Clock:         clock.New(),
		UUID:          uuid.New(),
		RoundDuration: cfg.roundDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	server, err := overlay.NewServer(&overlay.Config{
		GameService:        engine,
		LeaderboardService: leaderboardSvc,
		Hub:                hub,
		Bind:               cfg.bind,
		Port:               cfg.port,
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay server: %w", err)
	}

	if bot != nil {
		wordleCmd, err := discord.NewWordleCommand(engine, leaderboardSvc)
		if err != nil {
			return fmt.Errorf("failed to create wordle command: %w", err)
		}
		if err := bot.Start(wordleCmd); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				log.Error().Err(err).Msg("error stopping Discord bot")
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	if bot != nil {
		g.Go(func() error {
			bot.Summaries().Run(gctx)
			return nil
		})
	}
	if runSource != nil {
		g.Go(func() error {
			return runSource(gctx)
		})
	}
	g.Go(func() error {
		return server.ListenAndServe(gctx)
	})
	g.Go(func() error {
		return engine.Run(gctx)
	})

	err = g.Wait()
	log.Info().Msg("wordlive has been shut down")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLeaderboardRepo(cfg *Config, redisClient *redis.Client) (leaderboardRepo.Repository, error) {
	if cfg.leaderboardStore != storeRedis {
		return leaderboardRepo.NewMemory(), nil
	}

	repo, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard repository: %w", err)
	}
	return repo, nil
}
