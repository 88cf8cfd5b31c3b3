package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/services/game"
	"github.com/KirkDiggler/wordlive/internal/services/leaderboard"
)

const (
	subcommandNew         = "new"
	subcommandLeaderboard = "leaderboard"
	subcommandStatus      = "status"
)

// WordleCommand handles the /wordle command
type WordleCommand struct {
	BaseCommand
	gameService        game.Service
	leaderboardService leaderboard.Service
}

// NewWordleCommand creates a new wordle command handler
func NewWordleCommand(gameService game.Service, leaderboardService leaderboard.Service) (*WordleCommand, error) {
	if gameService == nil {
		return nil, ErrNilGameService
	}
	if leaderboardService == nil {
		return nil, ErrNilLeaderboard
	}

	return &WordleCommand{
		BaseCommand: BaseCommand{
			Name:        "wordle",
			Description: "Live chat Wordle commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandNew,
					Description: "Skip the current round and start a new word",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLeaderboard,
					Description: "Show the top players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStatus,
					Description: "Show the current round",
				},
			},
		},
		gameService:        gameService,
		leaderboardService: leaderboardService,
	}, nil
}

// Handle processes a Discord interaction for the wordle command
func (c *WordleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	_, username := interactionUser(i)
	embed, err := c.respond(context.Background(), data.Options[0].Name, username)
	if err != nil {
		log.Error().Err(err).
			Str("subcommand", data.Options[0].Name).
			Str("user", username).
			Msg("wordle command failed")
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEmbed(s, i, embed)
}

// respond runs a subcommand and renders its result
func (c *WordleCommand) respond(ctx context.Context, subcommand, requestedBy string) (*discordgo.MessageEmbed, error) {
	switch subcommand {
	case subcommandNew:
		out, err := c.gameService.RequestRestart(ctx, &game.RequestRestartInput{
			RequestedBy: requestedBy,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start a new round: %w", err)
		}
		embed := renderStatus(out.Snapshot)
		embed.Title = fmt.Sprintf("New round started by %s", requestedBy)
		return embed, nil
	case subcommandLeaderboard:
		out, err := c.leaderboardService.GetTopEntries(ctx, &leaderboard.GetTopEntriesInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to get leaderboard: %w", err)
		}
		return renderLeaderboard(out.Entries), nil
	case subcommandStatus:
		out, err := c.gameService.GetSnapshot(ctx, &game.GetSnapshotInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to get round status: %w", err)
		}
		return renderStatus(out.Snapshot), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubcommand, subcommand)
	}
}
