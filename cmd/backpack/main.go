package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/config"
	"github.com/osse101/BackpackBot_Go/internal/identity"
	"github.com/osse101/BackpackBot_Go/internal/schema"
	"github.com/osse101/BackpackBot_Go/internal/webapi"
)

const requestTimeout = 2 * time.Minute

func main() {
	player := flag.String("player", "", "SteamID64, vanity name, or profile URL to inspect")
	item := flag.Int("item", -1, "defindex of an item definition to look up")
	language := flag.String("language", "", "schema language code, for example de or en-US")
	asJSON := flag.Bool("json", false, "print JSON instead of text")
	flag.Parse()

	if (*player == "") == (*item < 0) {
		fmt.Fprintln(os.Stderr, "Specify exactly one of -player or -item")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Load .env file if present
	_ = godotenv.Load()

	steamKey := os.Getenv(config.EnvSteamAPIKey)
	if steamKey == "" {
		fatalf("%s must be set", config.EnvSteamAPIKey)
	}

	appID := config.DefaultAppID
	if raw := os.Getenv(config.EnvAppID); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fatalf("invalid %s: %v", config.EnvAppID, err)
		}
		appID = parsed
	}

	var lang string
	if *language != "" {
		lang = config.NormalizeLanguage(*language)
	}

	client := webapi.NewClient(os.Getenv(config.EnvSteamAPIBaseURL), steamKey, appID)
	schemas := schema.NewProvider(client, appID, schema.DefaultCacheConfig())

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var err error
	if *item >= 0 {
		err = dumpItem(ctx, schemas, *item, lang, *asJSON)
	} else {
		resolver := identity.NewResolver(client)
		backpacks := backpack.NewService(client, schemas, resolver)
		err = dumpBackpack(ctx, backpacks, *player, lang, *asJSON)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// itemJSON is the -json shape for a single item definition.
type itemJSON struct {
	Defindex   int        `json:"defindex"`
	Name       string     `json:"name"`
	FullName   string     `json:"full_name"`
	Quality    string     `json:"quality"`
	Slot       string     `json:"slot,omitempty"`
	TypeName   string     `json:"type_name,omitempty"`
	MinLevel   int        `json:"min_level"`
	MaxLevel   int        `json:"max_level"`
	Attributes []attrJSON `json:"attributes,omitempty"`
}

type attrJSON struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

func dumpItem(ctx context.Context, schemas schema.Provider, defindex int, language string, asJSON bool) error {
	catalog, err := schemas.Catalog(ctx, language)
	if err != nil {
		return err
	}

	item, err := catalog.Item(defindex)
	if err != nil {
		return err
	}

	attrs, err := item.Attributes()
	if err != nil {
		return err
	}

	if asJSON {
		out := itemJSON{
			Defindex: item.Defindex(),
			Name:     item.Name(),
			FullName: item.FullName(),
			Quality:  item.Quality().PrettyStr,
			Slot:     item.Slot(),
			TypeName: item.TypeName(),
			MinLevel: item.MinLevel(),
			MaxLevel: item.MaxLevel(),
		}
		for _, attr := range attrs {
			entry := attrJSON{
				Name:   attr.Name(),
				Value:  attr.FormattedValue(),
				Hidden: attr.Hidden(),
			}
			if desc, ok := attr.FormattedDescription(); ok {
				entry.Description = desc
			}
			out.Attributes = append(out.Attributes, entry)
		}
		return printJSON(out)
	}

	fmt.Println(item.FullName())
	fmt.Printf("  defindex: %d\n", item.Defindex())
	fmt.Printf("  quality:  %s\n", item.Quality().PrettyStr)
	if slot := item.Slot(); slot != "" {
		fmt.Printf("  slot:     %s\n", slot)
	}
	if typeName := item.TypeName(); typeName != "" {
		fmt.Printf("  type:     %s\n", typeName)
	}
	fmt.Printf("  levels:   %d-%d\n", item.MinLevel(), item.MaxLevel())
	for _, attr := range attrs {
		if attr.Hidden() {
			continue
		}
		if desc, ok := attr.FormattedDescription(); ok {
			fmt.Printf("  %s\n", desc)
		} else {
			fmt.Printf("  %s: %s\n", attr.Name(), attr.FormattedValue())
		}
	}
	return nil
}

func dumpBackpack(ctx context.Context, backpacks backpack.Service, player, language string, asJSON bool) error {
	snapshot, err := backpacks.Snapshot(ctx, player, language)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(snapshot)
	}

	fmt.Printf("Backpack of %s: %d items, %d cells\n", snapshot.SteamID, len(snapshot.Items), snapshot.TotalCells)
	for _, it := range snapshot.Items {
		line := fmt.Sprintf("[%4d] %s", it.Position, it.Name)
		if it.Quantity > 1 {
			line += fmt.Sprintf(" x%d", it.Quantity)
		}
		if len(it.Equipped) > 0 {
			line += fmt.Sprintf(" (equipped: %s)", strings.Join(it.Equipped, ", "))
		}
		fmt.Println(line)
	}
	if snapshot.SkippedItems > 0 {
		fmt.Printf("%d items could not be resolved against the schema\n", snapshot.SkippedItems)
	}
	return nil
}
