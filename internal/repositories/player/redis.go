package player

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	// Error messages
	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	// Check if already exists
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	now := r.clock.Now()
	input.Player.CreatedAt = now
	input.Player.UpdatedAt = now

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	// No TTL for players
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	return &CreateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player data")
	}

	return &GetOutput{Player: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.Player.ID)
	}

	input.Player.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.ID
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
