package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ItemCommand returns the item lookup command definition and handler
func ItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minDefindex := 0.0

	cmd := &discordgo.ApplicationCommand{
		Name:        "item",
		Description: "Look up an item definition from the TF2 schema",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "defindex",
				Description: "Item definition index",
				Required:    true,
				MinValue:    &minDefindex,
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

			defindex := int(options["defindex"].IntValue())
			var language string
			if opt, ok := options["language"]; ok {
				language = opt.StringValue()
			}

			detail, err := client.GetItem(defindex, language)
			if err != nil {
				return nil, err
			}

			embed := createEmbed(
				detail.FullName,
				formatItemDescription(detail),
				qualityColor(detail.Quality),
				"",
			)
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Quality", Value: detail.Quality, Inline: true},
			}
			if detail.Slot != "" {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name: "Slot", Value: detail.Slot, Inline: true,
				})
			}
			if len(detail.Classes) > 0 {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name: "Used By", Value: strings.Join(detail.Classes, ", "), Inline: true,
				})
			}
			if detail.ImageURL != "" {
				embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: detail.ImageURL}
			}

			return embed, nil
		})
	}

	return cmd, handler
}
