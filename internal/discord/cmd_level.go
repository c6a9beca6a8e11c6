package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// Slash command and option names
const (
	CommandLevel    = "level"
	CommandLevelTop = "leveltop"
	OptionName      = "name"
	OptionLimit     = "limit"
)

// LevelCommand shows one player's level
func LevelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandLevel,
		Description: "Show a player's level and experience",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionName,
				Description: "Minecraft player name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		name := ""
		if opt, ok := getOptions(i)[OptionName]; ok {
			name = strings.TrimSpace(opt.StringValue())
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		progress, err := client.GetPlayerByName(ctx, name)
		if err != nil {
			slog.Error(LogMsgCommandFailed, "command", CommandLevel, "name", name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, levelEmbed(progress))
	}

	return cmd, handler
}

func levelEmbed(p *domain.PlayerProgress) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⭐ %s's Level", p.Name),
		Color: ColorLevel,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", p.Level), Inline: true},
			{Name: "Total XP", Value: fmt.Sprintf("%.0f", p.Experience), Inline: true},
			{Name: "XP to Next Level", Value: fmt.Sprintf("%.0f", p.ExperienceToNext), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: FooterPlayerLevels},
	}
}

// LevelTopCommand shows the leaderboard
func LevelTopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := float64(domain.MinLeaderboardLimit)
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandLevelTop,
		Description: "Show the top players by experience",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLimit,
				Description: fmt.Sprintf("Number of players (default: %d)", domain.DefaultLeaderboardLimit),
				Required:    false,
				MinValue:    &minLimit,
				MaxValue:    float64(domain.MaxLeaderboardLimit),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		limit := domain.DefaultLeaderboardLimit
		if opt, ok := getOptions(i)[OptionLimit]; ok {
			limit = domain.ClampLeaderboardLimit(int(opt.IntValue()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		board, err := client.GetLeaderboard(ctx, limit)
		if err != nil {
			slog.Error(LogMsgCommandFailed, "command", CommandLevelTop, "limit", limit, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		if len(board.Players) == 0 {
			respondError(s, i, MsgNoPlayers)
			return
		}

		var sb strings.Builder
		for _, entry := range board.Players {
			fmt.Fprintf(&sb, "**#%d** %s - Level %d (%.0f XP)\n", entry.Rank, entry.Name, entry.Level, entry.Experience)
		}

		sendEmbed(s, i, &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🏆 Top %d Players", board.Limit),
			Description: sb.String(),
			Color:       ColorLeaderboard,
			Footer:      &discordgo.MessageEmbedFooter{Text: FooterPlayerLevels},
		})
	}

	return cmd, handler
}

// PingCommand checks that the bot is alive
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: MsgPong},
		}); err != nil {
			slog.Error(LogMsgSendFailed, "command", "ping", "error", err)
		}
	}

	return cmd, handler
}
