package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/discord"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
)

// DefaultHealthPort serves the bot health endpoint when DISCORD_HEALTH_PORT is unset
const DefaultHealthPort = "8082"

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	appCfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logCfg, err := logger.ForEnvironment("playerlevels-discord", appCfg.Version, appCfg.Environment).
		Override(appCfg.LogLevel, appCfg.LogFormat)
	logCfg.AddSource = false
	logger.InitLogger(logCfg)
	if err != nil {
		slog.Warn("Ignoring log setting", "error", err)
	}

	cfg, err := botConfig(appCfg)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, []CommandFactory{
		discord.PingCommand,
		discord.LevelCommand,
		discord.LevelTopCommand,
	})

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered on a previous run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// botConfig checks the Discord settings of the process configuration
func botConfig(cfg *config.Config) (discord.Config, error) {
	if cfg.DiscordToken == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.DiscordAppID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	return discord.Config{
		Token:  cfg.DiscordToken,
		AppID:  cfg.DiscordAppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
	}, nil
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
