package config

import "time"

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

const (
	envDiscordToken     = "DISCORD_TOKEN"
	envApplicationID    = "APPLICATION_ID"
	envGuildID          = "GUILD_ID"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLeagueVariant    = "LEAGUE_VARIANT"
	envLeagueFile       = "LEAGUE_FILE"
	envRNGSeed          = "RNG_SEED"
	envNarrativeEnabled = "NARRATIVE_ENABLED"
	envGeminiAPIKey     = "GEMINI_API_KEY"
	envGeminiModel      = "GEMINI_MODEL"
	envGeminiBaseURL    = "GEMINI_BASE_URL"
	envNarrativeTimeout = "NARRATIVE_TIMEOUT"
	envNarrativeRetries = "NARRATIVE_RETRIES"
	envNarrativeBackoff = "NARRATIVE_BACKOFF"
	envMetricsEnabled   = "METRICS_ENABLED"
	envMetricsAddr      = "METRICS_ADDR"
	envLeagueStore      = "LEAGUE_STORE"
	envRedisAddr        = "REDIS_ADDR"
	envRedisPassword    = "REDIS_PASSWORD"
	envRedisDB          = "REDIS_DB"
	envLeagueTTL        = "LEAGUE_TTL"

	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultLeagueVariant    = "manager"
	defaultNarrativeEnabled = true
	defaultGeminiModel      = "gemini-2.0-flash"
	defaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	// Headlines are decoration; a slow model should not hold one up for long.
	defaultNarrativeTimeout = 8 * time.Second
	defaultNarrativeRetries = 2
	defaultNarrativeBackoff = 250 * time.Millisecond
	defaultMetricsEnabled   = false
	defaultMetricsAddr      = ":9090"
	defaultRedisAddr        = "localhost:6379"
	// Leagues nobody has touched for a month are dropped.
	defaultLeagueTTL = 30 * 24 * time.Hour
)
