package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DofusPlanner_Go/internal/handler"
)

// CommandHandler answers one slash command against the planner API
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

type registeredCommand struct {
	definition *discordgo.ApplicationCommand
	handler    CommandHandler
}

// CommandRegistry maps slash command names to their definition and handler
type CommandRegistry struct {
	commands map[string]registeredCommand
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]registeredCommand)}
}

// Register replaces any command already registered under the same name
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.commands[cmd.Name] = registeredCommand{definition: cmd, handler: handler}
}

// Definitions returns the command definitions sorted by name
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]*discordgo.ApplicationCommand, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.commands[name].definition)
	}
	return defs
}

// Handle dispatches an interaction. Unknown commands are ignored.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	cmd, ok := r.commands[i.ApplicationCommandData().Name]
	if !ok {
		return
	}
	RecordCommand()
	cmd.handler(s, i, client)
}

// commandDiff lists the command names that differ between Discord and the registry
type commandDiff struct {
	Added   []string
	Changed []string
	Removed []string
}

func (d commandDiff) empty() bool {
	return len(d.Added) == 0 && len(d.Changed) == 0 && len(d.Removed) == 0
}

// diffCommands compares the registered definitions against Discord's copy
func diffCommands(existing, desired []*discordgo.ApplicationCommand) commandDiff {
	have := make(map[string]string, len(existing))
	for _, cmd := range existing {
		have[cmd.Name] = commandSignature(cmd)
	}

	var diff commandDiff
	for _, cmd := range desired {
		sig, ok := have[cmd.Name]
		switch {
		case !ok:
			diff.Added = append(diff.Added, cmd.Name)
		case sig != commandSignature(cmd):
			diff.Changed = append(diff.Changed, cmd.Name)
		}
		delete(have, cmd.Name)
	}
	for name := range have {
		diff.Removed = append(diff.Removed, name)
	}
	sort.Strings(diff.Removed)
	return diff
}

// commandSignature flattens the fields Discord lets us edit. Choice
// values are printed with %v so integers echoed back as float64 match.
func commandSignature(cmd *discordgo.ApplicationCommand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|", cmd.Name, cmd.Description)
	if cmd.DefaultMemberPermissions != nil {
		fmt.Fprintf(&b, "perm=%d", *cmd.DefaultMemberPermissions)
	}
	writeOptionSignatures(&b, cmd.Options)
	return b.String()
}

func writeOptionSignatures(b *strings.Builder, opts []*discordgo.ApplicationCommandOption) {
	for _, opt := range opts {
		fmt.Fprintf(b, "(%d:%s:%s:%t:%t", opt.Type, opt.Name, opt.Description, opt.Required, opt.Autocomplete)
		for _, c := range opt.Choices {
			fmt.Fprintf(b, "[%s=%v]", c.Name, c.Value)
		}
		writeOptionSignatures(b, opt.Options)
		b.WriteString(")")
	}
}

// RegisterCommands pushes the registry to Discord. Without forceUpdate the
// bulk overwrite is skipped when nothing changed, to stay clear of the
// command rate limit.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	desired := registry.Definitions()

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}

		diff := diffCommands(existing, desired)
		if diff.empty() {
			slog.Info("Planner commands up to date", "count", len(desired))
			return nil
		}
		slog.Info("Planner commands out of date",
			"added", diff.Added,
			"changed", diff.Changed,
			"removed", diff.Removed)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}
	slog.Info("Planner commands registered", "count", len(desired), "forced", forceUpdate)
	return nil
}

// respondError edits the deferred response with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse defers the interaction, runs action and sends its
// result as an embed, or a friendly error when the action fails.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	msg, err := action()
	if err != nil {
		slog.Error("Action failed", "title", config.Title, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	sendEmbed(s, i, createEmbed(config.Title, msg, config.Color, ""))
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should return early.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap indexes command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := getOptions(i)
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// respondFriendlyError formats the error message before responding.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError maps API error messages onto Discord copy
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, "API error: ")

	switch {
	case strings.Contains(msg, handler.ErrMsgItemNotFoundError):
		return MsgItemNotFound
	case strings.Contains(msg, handler.ErrMsgPlannedItemNotFoundError):
		return MsgPlannedItemNotFound
	case strings.Contains(msg, handler.ErrMsgInvalidLotSizeError):
		return MsgInvalidLotSize
	case strings.Contains(msg, handler.ErrMsgGenericServerError),
		strings.Contains(msg, "max retries exceeded"):
		return MsgAPIUnavailable
	default:
		return "❌ " + msg
	}
}

// sendEmbed edits the deferred response with a single embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// Footer text for embeds
const (
	FooterPlanner = "DofusPlanner"
)

// createEmbed creates a standard embed; an empty footerText uses FooterPlanner.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterPlanner
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
