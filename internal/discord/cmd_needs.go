package discord

import (
	"github.com/bwmarrin/discordgo"
)

// NeedsCommand returns the /needs command definition and handler
func NeedsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "needs",
		Description: "List the resources your plan consumes",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		handleEmbedResponse(s, i, func() (string, error) {
			needs, err := client.Needs(accountFor(user), nil)
			if err != nil {
				return "", err
			}
			return formatNeeds(needs), nil
		}, ResponseConfig{
			Title: embedTitle("🧺", "resources needed"),
			Color: ColorNeeds,
		})
	}

	return cmd, handler
}

// ShoppingCommand returns the /shopping command definition and handler
func ShoppingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shopping",
		Description: "Build a shopping list for your plan",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "expand",
				Description: "Buy the ingredients of craftable resources instead",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		options := optionMap(i)

		handleEmbedResponse(s, i, func() (string, error) {
			account := accountFor(user)

			var selected []int
			if opt, ok := options["expand"]; ok && opt.BoolValue() {
				needs, err := client.Needs(account, nil)
				if err != nil {
					return "", err
				}
				for _, need := range needs {
					if need.IsCraftable {
						selected = append(selected, need.ID)
					}
				}
			}

			items, err := client.ShoppingList(account, selected, nil)
			if err != nil {
				return "", err
			}
			return formatShoppingList(items), nil
		}, ResponseConfig{
			Title: embedTitle("🛒", "shopping list"),
			Color: ColorShopping,
		})
	}

	return cmd, handler
}
