package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RefreshCommand returns the admin schema refresh command definition
// and handler
func RefreshCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminPermission := int64(discordgo.PermissionAdministrator)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "refresh-schema",
		Description:              "Force a fresh item schema fetch from Steam",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
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
			var language string
			if opt, ok := optionMap(i)["language"]; ok {
				language = opt.StringValue()
			}

			resp, err := client.RefreshSchema(language)
			if err != nil {
				return nil, err
			}

			description := fmt.Sprintf("Loaded **%d** items for language **%s**.", resp.Items, resp.Language)
			return createEmbed("Schema Refreshed", description, 0x2ECC71, FooterBackpackBotAdmin), nil
		})
	}

	return cmd, handler
}
