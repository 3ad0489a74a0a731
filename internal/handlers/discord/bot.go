package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/fridaynight/internal/logging"
	"github.com/KirkDiggler/fridaynight/internal/services/season"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	fnl        *FNLCommand
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	SeasonService season.Service

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SeasonService == nil {
		return nil, errors.New("season service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		fnl:        NewFNLCommand(cfg.SeasonService, logger),
		config:     cfg,
		logger:     logger,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.fnl); err != nil {
		return fmt.Errorf("failed to register fnl command: %w", err)
	}

	logging.Info(b.logger, "bot is running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			logging.Error(b.logger, "failed to delete command", err, logging.FieldCommand, cmdName)
		} else {
			logging.Info(b.logger, "deleted command", logging.FieldCommand, cmdName)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for GuildID when set, otherwise globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	logging.Info(b.logger, "registered command",
		logging.FieldCommand, cmd.GetName(),
		"guild_id", b.config.GuildID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				logging.Error(b.logger, "failed to handle command", err, logging.FieldCommand, name)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			logging.Error(b.logger, "failed to handle component interaction", err)
		}
	}
}

// handleComponentInteraction runs the subcommand behind a button
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, ok := buttonSubcommand(i.MessageComponentData().CustomID)
	if !ok {
		return nil
	}

	ctx := logging.WithLogger(context.Background(), logging.ForInteraction(b.logger, sub, i.ChannelID))

	resp, err := b.fnl.execute(ctx, i.ChannelID, sub, nil)
	if err != nil {
		if !isUserError(err) {
			logging.Error(b.logger, "button failed", err, logging.FieldCommand, sub)
		}
		return RespondWithError(s, i, errorMessage(err))
	}
	return Respond(s, i, resp)
}

// buttonSubcommand maps a button's custom ID to the subcommand it runs
func buttonSubcommand(customID string) (string, bool) {
	switch customID {
	case ButtonAdvanceWeek:
		return SubcommandAdvance, true
	case ButtonAdvanceSeason:
		return SubcommandNewSeason, true
	case ButtonStandings:
		return SubcommandStandings, true
	}
	return "", false
}
