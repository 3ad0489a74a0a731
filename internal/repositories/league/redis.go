package league

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	leagueKeyPrefix = "league:"

	// maxAppendAttempts bounds optimistic retries when another writer
	// touches the league between WATCH and EXEC.
	maxAppendAttempts = 5
)

// RedisConfig holds configuration for the Redis league repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is refreshed on every write; zero never expires
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed league repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func leagueKey(id string) string {
	return leagueKeyPrefix + id
}

// SaveLeague stores the league as one JSON document. The stored version is
// checked under WATCH, so a writer in another process that got there first
// turns this save into ErrVersionConflict instead of being overwritten.
// On success input.League.Version holds the stored version.
func (r *redisRepository) SaveLeague(ctx context.Context, input *SaveLeagueInput) error {
	if input == nil || input.League == nil {
		return errors.New("input and league cannot be nil")
	}
	if input.League.ID == "" {
		return errors.New("league ID cannot be empty")
	}

	key := leagueKey(input.League.ID)
	expected := input.League.Version

	saved := *input.League
	saved.Version = expected + 1
	leagueJSON, err := json.Marshal(&saved)
	if err != nil {
		return fmt.Errorf("failed to marshal league: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		var storedVersion int64
		storedJSON, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("failed to get league: %w", err)
		default:
			stored, err := decodeLeague(storedJSON)
			if err != nil {
				return err
			}
			storedVersion = stored.Version
		}
		if storedVersion != expected {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, leagueJSON, r.ttl)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	switch {
	case errors.Is(err, redis.TxFailedErr), errors.Is(err, ErrVersionConflict):
		return ErrVersionConflict
	case err != nil:
		return fmt.Errorf("failed to save league: %w", err)
	}

	input.League.Version = saved.Version
	return nil
}

// GetLeague retrieves a league by ID from Redis
func (r *redisRepository) GetLeague(ctx context.Context, input *GetLeagueInput) (*models.League, error) {
	if input == nil || input.LeagueID == "" {
		return nil, errors.New("input and league ID cannot be empty")
	}

	leagueJSON, err := r.client.Get(ctx, leagueKey(input.LeagueID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	return decodeLeague(leagueJSON)
}

func (r *redisRepository) DeleteLeague(ctx context.Context, input *DeleteLeagueInput) error {
	if input == nil || input.LeagueID == "" {
		return errors.New("input and league ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, leagueKey(input.LeagueID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	if deleted == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

// AppendNews rewrites the stored league under WATCH so a concurrent save is
// never clobbered with stale data.
func (r *redisRepository) AppendNews(ctx context.Context, input *AppendNewsInput) error {
	if input == nil || input.LeagueID == "" {
		return errors.New("input and league ID cannot be empty")
	}

	key := leagueKey(input.LeagueID)
	txf := func(tx *redis.Tx) error {
		leagueJSON, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrLeagueNotFound
			}
			return fmt.Errorf("failed to get league: %w", err)
		}

		stored, err := decodeLeague(leagueJSON)
		if err != nil {
			return err
		}
		stored.News = prependNews(stored.News, input.Item)
		stored.Version++

		updated, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal league: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to append news after %d attempts: %w", maxAppendAttempts, redis.TxFailedErr)
}

func decodeLeague(leagueJSON []byte) (*models.League, error) {
	var l models.League
	if err := json.Unmarshal(leagueJSON, &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league: %w", err)
	}
	return &l, nil
}
