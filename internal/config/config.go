package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the application configuration
type Config struct {
	Port             int
	LogLevel         string
	LogFormat        string
	Environment      string
	SteamAPIKey      string // Steam WebAPI key used for upstream requests
	SteamAPIBaseURL  string // override for the Steam WebAPI host, empty means the default
	AppID            int
	Language         string
	APIKey           string   // API key for authentication
	TrustedProxies   []string // peers whose X-Forwarded-For is trusted
	SchemaCacheSize  int
	SchemaCacheTTL   time.Duration
	StrictValidation bool
	DiscordToken     string
	DiscordGuildID   string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		SteamAPIKey:      getEnv(EnvSteamAPIKey, ""),
		SteamAPIBaseURL:  getEnv(EnvSteamAPIBaseURL, ""),
		Language:         NormalizeLanguage(getEnv(EnvLanguage, DefaultLanguage)),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   splitList(getEnv(EnvTrustedProxies, "")),
		StrictValidation: getEnvBool(EnvStrictValidation, false),
		DiscordToken:     getEnv(EnvDiscordToken, ""),
		DiscordGuildID:   getEnv(EnvDiscordGuildID, ""),
	}

	port, err := getEnvInt(EnvPort, DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	appID, err := getEnvInt(EnvAppID, DefaultAppID)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvAppID, err)
	}
	cfg.AppID = appID

	cacheSize, err := getEnvInt(EnvSchemaCacheSize, DefaultSchemaCacheSize)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSchemaCacheSize, err)
	}
	cfg.SchemaCacheSize = cacheSize

	cacheTTL, err := getEnvDuration(EnvSchemaCacheTTL, DefaultSchemaCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSchemaCacheTTL, err)
	}
	cfg.SchemaCacheTTL = cacheTTL

	// Validate the upstream key is set, nothing works without it
	if cfg.SteamAPIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set", EnvSteamAPIKey)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvAPIKey)
	}

	return cfg, nil
}

// NormalizeLanguage maps a language identifier to the short code the item
// server expects. Region subtags are stripped, so "en-US" becomes "en", and
// anything unparseable falls back to the default language.
func NormalizeLanguage(raw string) string {
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLanguage
	}
	base, _ := tag.Base()
	return base.String()
}

// splitList parses a comma-separated environment value into a slice,
// dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
