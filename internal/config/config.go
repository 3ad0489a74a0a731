package config

import "time"

// Config holds runtime configuration for the bot.
type Config struct {
	Discord   DiscordConfig
	Log       LogConfig
	League    LeagueConfig
	Store     StoreConfig
	Narrative NarrativeConfig
	Metrics   MetricsConfig
}

// DiscordConfig is how the bot signs in
type DiscordConfig struct {
	Token         string
	ApplicationID string

	// GuildID registers commands on one server, for development
	GuildID string
}

type LogConfig struct {
	Level  string
	Format string
}

// LeagueConfig picks the rules new leagues are created with
type LeagueConfig struct {
	// Variant is a built-in variant name
	Variant string

	// File is an optional YAML file overriding fields of Variant
	File string

	// Seed fixes the random source; zero seeds from the clock
	Seed int64
}

// NarrativeConfig controls the headline writer
type NarrativeConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Retries int
	Backoff time.Duration
}

// StoreConfig picks where leagues are kept
type StoreConfig struct {
	// Backend is StoreMemory or StoreRedis
	Backend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// TTL expires idle leagues in redis; zero keeps them forever
	TTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Discord: DiscordConfig{
			Token:         envOrDefault(envDiscordToken, ""),
			ApplicationID: envOrDefault(envApplicationID, ""),
			GuildID:       envOrDefault(envGuildID, ""),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		League: LeagueConfig{
			Variant: envOrDefault(envLeagueVariant, defaultLeagueVariant),
			File:    envOrDefault(envLeagueFile, ""),
			Seed:    int64EnvOrDefault(envRNGSeed, 0),
		},
		Store: StoreConfig{
			Backend:       envOrDefault(envLeagueStore, StoreMemory),
			RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			RedisPassword: envOrDefault(envRedisPassword, ""),
			RedisDB:       intEnvOrDefault(envRedisDB, 0),
			TTL:           durationEnvOrDefault(envLeagueTTL, defaultLeagueTTL),
		},
		Narrative: loadNarrative(),
		Metrics: MetricsConfig{
			Enabled: boolEnvOrDefault(envMetricsEnabled, defaultMetricsEnabled),
			Addr:    envOrDefault(envMetricsAddr, defaultMetricsAddr),
		},
	}
}

func loadNarrative() NarrativeConfig {
	cfg := NarrativeConfig{
		Enabled: boolEnvOrDefault(envNarrativeEnabled, defaultNarrativeEnabled),
		APIKey:  envOrDefault(envGeminiAPIKey, ""),
		Model:   envOrDefault(envGeminiModel, defaultGeminiModel),
		BaseURL: envOrDefault(envGeminiBaseURL, defaultGeminiBaseURL),
		Timeout: durationEnvOrDefault(envNarrativeTimeout, defaultNarrativeTimeout),
		Retries: intEnvOrDefault(envNarrativeRetries, defaultNarrativeRetries),
		Backoff: durationEnvOrDefault(envNarrativeBackoff, defaultNarrativeBackoff),
	}
	// Without a key every call would fail and fall back anyway.
	if cfg.APIKey == "" {
		cfg.Enabled = false
	}
	return cfg
}
