package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// CacheStatsCommand returns the admin cache stats command definition
// and handler
func CacheStatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminPermission := int64(discordgo.PermissionAdministrator)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "cache-stats",
		Description:              "Show schema cache statistics",
		DefaultMemberPermissions: &adminPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			stats, err := client.GetCacheStats()
			if err != nil {
				return nil, err
			}

			hitRate := 0.0
			if total := stats.Hits + stats.Misses; total > 0 {
				hitRate = float64(stats.Hits) / float64(total) * 100
			}

			description := fmt.Sprintf(
				"**Hit Rate:** %.1f%%\n**Hits:** %d\n**Misses:** %d\n**Cached Catalogs:** %d",
				hitRate, stats.Hits, stats.Misses, stats.Entries,
			)
			return createEmbed("Schema Cache", description, 0x3498DB, FooterBackpackBotAdmin), nil
		})
	}

	return cmd, handler
}
