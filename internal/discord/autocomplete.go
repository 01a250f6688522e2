package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// MaxAutocompleteChoices is Discord's cap on autocomplete results
const MaxAutocompleteChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "plan-add":
		handleItemAutocomplete(s, i, client)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleItemAutocomplete suggests catalog items matching the focused option
func handleItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	focusedValue := getFocusedOptionValue(i.ApplicationCommandData().Options)

	var choices []*discordgo.ApplicationCommandOptionChoice
	if focusedValue != "" {
		items, err := client.SearchItems(focusedValue, MaxAutocompleteChoices)
		if err != nil {
			slog.Error("Failed to search items for autocomplete", "error", err)
		}
		for _, item := range items {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  item.Name,
				Value: item.Name,
			})
			if len(choices) >= MaxAutocompleteChoices {
				break
			}
		}
	}

	respondAutocomplete(s, i, choices)
}

func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return opt.StringValue()
		}
	}
	return ""
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
