package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// BackpackCommand returns the backpack command definition and handler
func BackpackCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "backpack",
		Description: "Look up a player's TF2 backpack",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "SteamID64, vanity name, or profile URL",
				Required:    true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "language",
				Description:  "Schema language (default: English)",
				Required:     false,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			options := optionMap(i)

			identifier := options["player"].StringValue()
			var language string
			if opt, ok := options["language"]; ok {
				language = opt.StringValue()
			}

			snapshot, err := client.GetBackpack(identifier, language)
			if err != nil {
				return nil, err
			}

			embed := createEmbed(
				fmt.Sprintf("%s's Backpack", snapshot.SteamID),
				formatBackpackLines(snapshot.Items),
				DefaultEmbedColor,
				"",
			)
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Items", Value: fmt.Sprintf("%d", len(snapshot.Items)), Inline: true},
				{Name: "Slots", Value: fmt.Sprintf("%d", snapshot.TotalCells), Inline: true},
			}
			if snapshot.SkippedItems > 0 {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name:   "Unresolvable",
					Value:  fmt.Sprintf("%d", snapshot.SkippedItems),
					Inline: true,
				})
			}

			return embed, nil
		})
	}

	return cmd, handler
}
