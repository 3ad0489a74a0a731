package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/common/clock"
	"github.com/KirkDiggler/fridaynight/internal/common/uuid"
	"github.com/KirkDiggler/fridaynight/internal/config"
	"github.com/KirkDiggler/fridaynight/internal/dice"
	"github.com/KirkDiggler/fridaynight/internal/engine"
	"github.com/KirkDiggler/fridaynight/internal/handlers/discord"
	"github.com/KirkDiggler/fridaynight/internal/logging"
	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/providers"
	"github.com/KirkDiggler/fridaynight/internal/providers/gemini"
	"github.com/KirkDiggler/fridaynight/internal/repositories/league"
	"github.com/KirkDiggler/fridaynight/internal/services/narrative"
	"github.com/KirkDiggler/fridaynight/internal/services/season"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}).With(logging.FieldService, "fridaynight")

	if cfg.Discord.Token == "" {
		logging.Error(logger, "DISCORD_TOKEN environment variable is required", errors.New("missing token"))
		os.Exit(1)
	}

	variant, err := config.LoadVariant(cfg.League.Variant, cfg.League.File)
	if err != nil {
		logging.Error(logger, "failed to load league variant", err, logging.FieldVariant, cfg.League.Variant)
		os.Exit(1)
	}

	recorder := metrics.NewRecorder()

	eng, err := engine.New(&engine.Config{
		Variant:       variant,
		Roller:        dice.New(&dice.Config{Seed: cfg.League.Seed}),
		UUIDGenerator: uuid.NewShort(),
	})
	if err != nil {
		logging.Error(logger, "failed to create engine", err)
		os.Exit(1)
	}

	var generator providers.Generator
	if cfg.Narrative.Enabled {
		client := gemini.NewClient(gemini.Config{
			BaseURL: cfg.Narrative.BaseURL,
			APIKey:  cfg.Narrative.APIKey,
			Model:   cfg.Narrative.Model,
		})
		generator = providers.NewRetryingGenerator(client, logger, client.Name(), cfg.Narrative.Retries+1, cfg.Narrative.Backoff)
	} else {
		logging.Info(logger, "narrative disabled, using fallback headlines")
	}

	narrativeSvc, err := narrative.New(&narrative.Config{
		Generator: generator,
		Logger:    logger,
		Metrics:   recorder,
	})
	if err != nil {
		logging.Error(logger, "failed to create narrative service", err)
		os.Exit(1)
	}

	repo, closeRepo, err := newLeagueRepository(cfg.Store)
	if err != nil {
		logging.Error(logger, "failed to create league repository", err, "backend", cfg.Store.Backend)
		os.Exit(1)
	}
	defer closeRepo()

	seasonSvc, err := season.New(&season.Config{
		Engine:           eng,
		Repository:       repo,
		Clock:            clock.New(),
		UUIDGenerator:    uuid.NewShort(),
		Narrative:        narrativeSvc,
		NarrativeTimeout: cfg.Narrative.Timeout,
		Logger:           logger,
		Metrics:          recorder,
	})
	if err != nil {
		logging.Error(logger, "failed to create season service", err)
		os.Exit(1)
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           recorder.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logging.Info(logger, "serving metrics", "addr", cfg.Metrics.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error(logger, "metrics server stopped", err)
			}
		}()
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		SeasonService: seasonSvc,
		Logger:        logger,
	})
	if err != nil {
		logging.Error(logger, "failed to create Discord bot", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logging.Error(logger, "failed to start Discord bot", err)
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logging.Error(logger, "error stopping bot", err)
	}

	// Let in-flight headlines land before exiting
	seasonSvc.Close()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			logging.Error(logger, "error stopping metrics server", err)
		}
	}

	logging.Info(logger, "bot has been shut down")
}

// newLeagueRepository builds the configured store and a func that releases it
func newLeagueRepository(cfg config.StoreConfig) (league.Repository, func(), error) {
	switch cfg.Backend {
	case config.StoreMemory:
		return league.NewMemory(), func() {}, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := league.NewRedis(&league.RedisConfig{
			RedisClient: client,
			TTL:         cfg.TTL,
		})
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return repo, func() { client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown league store %q", cfg.Backend)
}
