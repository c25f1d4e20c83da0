package discord

import (
	"fmt"
	"strings"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/handler"
)

// Embed colors keyed by the pretty quality name the API returns. These
// are the tooltip colors the game itself uses.
var qualityColors = map[string]int{
	"Normal":      0xB2B2B2,
	"Genuine":     0x4D7455,
	"Vintage":     0x476291,
	"Unusual":     0x8650AC,
	"Unique":      0xFFD700,
	"Community":   0x70B04A,
	"Valve":       0xA50F79,
	"Self-Made":   0x70B04A,
	"Strange":     0xCF6A32,
	"Haunted":     0x38F3AB,
	"Collector's": 0xAA0000,
}

// DefaultEmbedColor is used when a quality has no known color.
const DefaultEmbedColor = 0x5885A2

// qualityColor returns the embed color for a quality name
func qualityColor(quality string) int {
	if color, ok := qualityColors[quality]; ok {
		return color
	}
	return DefaultEmbedColor
}

// maxBackpackLines caps how many items a backpack embed lists before
// collapsing the rest into a count.
const maxBackpackLines = 15

// formatBackpackLines renders the item list section of a backpack embed
func formatBackpackLines(items []backpack.DecoratedItem) string {
	if len(items) == 0 {
		return "This backpack is empty."
	}

	lines := make([]string, 0, min(len(items), maxBackpackLines)+1)
	for idx, item := range items {
		if idx == maxBackpackLines {
			lines = append(lines, fmt.Sprintf("...and %d more", len(items)-maxBackpackLines))
			break
		}

		line := fmt.Sprintf("**%s**", item.Name)
		if item.Quantity > 1 {
			line += fmt.Sprintf(" x%d", item.Quantity)
		}
		if len(item.Equipped) > 0 {
			line += " ⚔️"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// formatItemDescription renders the tooltip body for an item embed
func formatItemDescription(detail *handler.ItemDetail) string {
	var lines []string

	levelLine := fmt.Sprintf("Level %d", detail.MinLevel)
	if detail.MaxLevel != detail.MinLevel {
		levelLine = fmt.Sprintf("Level %d-%d", detail.MinLevel, detail.MaxLevel)
	}
	if detail.TypeName != "" {
		levelLine += " " + detail.TypeName
	}
	lines = append(lines, fmt.Sprintf("*%s*", levelLine))

	for _, attr := range detail.Attributes {
		if attr.Hidden {
			continue
		}
		if attr.Description != "" {
			lines = append(lines, attr.Description)
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s", attr.Name, attr.Value))
		}
	}

	if detail.Description != "" {
		lines = append(lines, "", detail.Description)
	}

	return strings.Join(lines, "\n")
}
