package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/discord"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
)

// DefaultWebhookPort serves the bot's health endpoint
const DefaultWebhookPort = "8082"

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	// Load .env file
	_ = godotenv.Load()

	setupLogger()

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	cfg := discord.Config{
		Token:  os.Getenv("DISCORD_TOKEN"),
		AppID:  os.Getenv("DISCORD_APP_ID"),
		APIURL: os.Getenv("API_URL"),
		APIKey: os.Getenv("API_KEY"),
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	webhookPort := os.Getenv("DISCORD_WEBHOOK_PORT")
	if webhookPort == "" {
		webhookPort = DefaultWebhookPort
	}

	httpServer := discord.NewHTTPServer(webhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

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

// setupLogger configures structured logging from LOG_LEVEL and LOG_FORMAT.
func setupLogger() {
	logger.InitLogger(logger.NewConfig(
		os.Getenv("LOG_LEVEL"),
		os.Getenv("LOG_FORMAT"),
		"dofusplanner-discord",
		os.Getenv("VERSION"),
		os.Getenv("ENVIRONMENT"),
		false,
	))
}

// getCommandFactories returns every slash command the bot exposes.
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,

		// Plan commands
		discord.PlanCommand,
		discord.PlanAddCommand,

		// Requirement commands
		discord.NeedsCommand,
		discord.ShoppingCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
