package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PlanCommand returns the /plan command definition and handler
func PlanCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plan",
		Description: "Show your production plan",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		handleEmbedResponse(s, i, func() (string, error) {
			items, err := client.ListPlan(accountFor(user))
			if err != nil {
				return "", err
			}
			return formatPlan(items), nil
		}, ResponseConfig{
			Title: embedTitle("📋", "production plan"),
			Color: ColorPlan,
		})
	}

	return cmd, handler
}

// PlanAddCommand returns the /plan-add command definition and handler
func PlanAddCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plan-add",
		Description: "Add an item to your production plan",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item to craft",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "lot",
				Description: "Lot size (default: 1)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "1", Value: 1},
					{Name: "10", Value: 10},
					{Name: "100", Value: 100},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		options := optionMap(i)

		handleEmbedResponse(s, i, func() (string, error) {
			itemOpt, ok := options["item"]
			if !ok {
				return "", fmt.Errorf("missing required item argument")
			}
			lot := 0
			if lotOpt, ok := options["lot"]; ok {
				lot = int(lotOpt.IntValue())
			}

			item, err := client.AddToPlan(accountFor(user), itemOpt.StringValue(), lot)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Added **%s** × %d (lot %d)", item.ItemName, item.DailyQuantity, item.LotSize), nil
		}, ResponseConfig{
			Title: embedTitle("➕", "plan updated"),
			Color: ColorPlan,
		})
	}

	return cmd, handler
}
