package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/wordlive/internal/models"
)

var rankEmojis = []string{"🥇", "🥈", "🥉"}

var letterSquares = map[models.LetterStatus]string{
	models.LetterStatusCorrect: "🟩",
	models.LetterStatusPresent: "🟨",
	models.LetterStatusAbsent:  "⬛",
	models.LetterStatusEmpty:   "⬜",
}

// displayName prefers the guild nickname, then the global name, then the username
func displayName(nick string, user *discordgo.User) string {
	if nick != "" {
		return nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// avatarURL is empty for users without a custom avatar
func avatarURL(user *discordgo.User) string {
	if user == nil || user.Avatar == "" {
		return ""
	}
	return user.AvatarURL("128")
}

// renderGuess draws a guess as a row of colored squares followed by its letters
func renderGuess(g *models.Guess) string {
	var row strings.Builder
	for _, status := range g.Statuses {
		square, ok := letterSquares[status]
		if !ok {
			square = letterSquares[models.LetterStatusEmpty]
		}
		row.WriteString(square)
	}
	return fmt.Sprintf("%s `%s` by %s", row.String(), strings.Join(strings.Split(g.Word, ""), " "), g.Author.DisplayName)
}

// renderStatus builds the embed for the current round
func renderStatus(snap *models.RoundSnapshot) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Wordle Live",
		Color: colorInfo,
	}

	var desc strings.Builder
	if snap.Message != "" {
		desc.WriteString(snap.Message)
		desc.WriteString("\n\n")
	}
	if snap.BestGuess != nil {
		desc.WriteString("**Best guess**\n")
		desc.WriteString(renderGuess(snap.BestGuess))
		desc.WriteString("\n\n")
	}
	if len(snap.RecentGuesses) > 0 {
		desc.WriteString("**Recent guesses**\n")
		for i := range snap.RecentGuesses {
			desc.WriteString(renderGuess(&snap.RecentGuesses[i]))
			desc.WriteString("\n")
		}
	}
	if desc.Len() == 0 {
		desc.WriteString(snap.Hint)
	}
	embed.Description = strings.TrimSpace(desc.String())

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "State", Value: string(snap.State), Inline: true},
		{Name: "Time left", Value: formatSeconds(snap.RemainingSeconds), Inline: true},
		{Name: "Guesses", Value: fmt.Sprintf("%d", snap.GuessCount), Inline: true},
	}
	if !snap.Connected {
		embed.Color = colorWarn
	}
	return embed
}

// renderLeaderboard builds the embed for the top of the board
func renderLeaderboard(entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Leaderboard 🏆",
		Color: colorInfo,
	}
	if len(entries) == 0 {
		embed.Description = "No winners yet. Be the first to solve a word!"
		return embed
	}

	var desc strings.Builder
	for i, entry := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(rankEmojis) {
			rank = rankEmojis[i]
		}
		label := "wins"
		if entry.Wins == 1 {
			label = "win"
		}
		desc.WriteString(fmt.Sprintf("%s **%s** %d %s\n", rank, entry.Player.DisplayName, entry.Wins, label))
	}
	embed.Description = strings.TrimSpace(desc.String())
	return embed
}

// renderSummary builds the embed shown after a round ends
func renderSummary(summary *models.RoundSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: summary.Title,
		Color: colorInfo,
	}
	if summary.Outcome == models.RoundOutcomeTimeout {
		embed.Color = colorWarn
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("The word was **%s**", summary.Word))
	if summary.Winner != nil {
		desc.WriteString(fmt.Sprintf(", solved by **%s**", summary.Winner.DisplayName))
	}
	embed.Description = desc.String()

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Definition",
		Value: strings.Join(summary.Definitions, "\n"),
	})
	if len(summary.Examples) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Example",
			Value: "_" + summary.Examples[0] + "_",
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Guesses",
		Value:  fmt.Sprintf("%d", summary.GuessCount),
		Inline: true,
	})
	if summary.Winner != nil && summary.Winner.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: summary.Winner.AvatarURL}
	}
	return embed
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
