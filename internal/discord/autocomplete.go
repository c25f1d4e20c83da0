package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// supportedLanguages lists the schema languages the Steam WebAPI
// localizes, offered as autocomplete choices for language options.
var supportedLanguages = []struct {
	Code string
	Name string
}{
	{"en", "English"},
	{"de", "German"},
	{"fr", "French"},
	{"es", "Spanish"},
	{"it", "Italian"},
	{"nl", "Dutch"},
	{"pt", "Portuguese"},
	{"sv", "Swedish"},
	{"da", "Danish"},
	{"fi", "Finnish"},
	{"no", "Norwegian"},
	{"pl", "Polish"},
	{"cs", "Czech"},
	{"hu", "Hungarian"},
	{"ro", "Romanian"},
	{"tr", "Turkish"},
	{"ru", "Russian"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"zh", "Chinese"},
	{"th", "Thai"},
}

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "backpack", "item", "refresh-schema":
		handleLanguageAutocomplete(s, i)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleLanguageAutocomplete suggests schema languages matching the
// focused option value
func handleLanguageAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	focusedValue := getFocusedOptionValue(getOptions(i))

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, lang := range supportedLanguages {
		if focusedValue == "" ||
			strings.HasPrefix(lang.Code, focusedValue) ||
			strings.Contains(strings.ToLower(lang.Name), focusedValue) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  lang.Name,
				Value: lang.Code,
			})
		}
		if len(choices) >= 25 {
			break
		}
	}

	respondAutocomplete(s, i, choices)
}

func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
