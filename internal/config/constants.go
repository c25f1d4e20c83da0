package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
	EnvSteamAPIKey      = "STEAM_API_KEY"
	EnvSteamAPIBaseURL  = "STEAM_API_BASE_URL"
	EnvAppID            = "APP_ID"
	EnvLanguage         = "LANGUAGE"
	EnvPort             = "PORT"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvSchemaCacheSize  = "SCHEMA_CACHE_SIZE"
	EnvSchemaCacheTTL   = "SCHEMA_CACHE_TTL"
	EnvStrictValidation = "STRICT_PAYLOAD_VALIDATION"
	EnvDiscordToken     = "DISCORD_TOKEN"
	EnvDiscordGuildID   = "DISCORD_GUILD_ID"
)

// Defaults
const (
	DefaultAppID           = 440 // Team Fortress 2
	DefaultLanguage        = "en"
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultSchemaCacheSize = 8
	DefaultSchemaCacheTTL  = 4 * time.Hour
)
