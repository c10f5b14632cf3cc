package saves

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

// KeyPrefix namespaces save records in Redis
const KeyPrefix = "save:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis save repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  clk,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	rec := input.Record
	rec.SavedAt = r.clock.Now()
	if err := rec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid save record")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save %s", input.Slot)
	}

	if err := r.client.Set(ctx, GetKey(input.Slot), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write save %s", input.Slot)
	}

	return &SaveOutput{Record: rec}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save %s not found", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to read save %s", input.Slot)
	}

	rec, err := Decode([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "save %s", input.Slot).WithMeta("slot", input.Slot)
	}

	return &LoadOutput{Record: *rec}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	removed, err := r.client.Del(ctx, GetKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s", input.Slot)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("save %s not found", input.Slot)
	}

	return &DeleteOutput{}, nil
}

// Decode parses a stored record. Unparseable or out of range records are
// reported as DataLoss.
func Decode(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "corrupt save record")
	}
	if err := rec.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "save record out of range")
	}
	return &rec, nil
}

// GetKey returns the Redis key for a slot
func GetKey(slot string) string {
	return KeyPrefix + slot
}
