package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

const (
	// Key prefix for per-room roll history sorted sets
	historyKeyPrefix = "roll_history:"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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
	}, nil
}

// AddRollRecord appends a roll record, scored by its timestamp
func (r *redisRepository) AddRollRecord(ctx context.Context, input *AddRollRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.Passcode == "" {
		return errors.New("record passcode cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal roll record: %w", err)
	}

	historyKey := fmt.Sprintf("%s%s", historyKeyPrefix, input.Record.Passcode)
	err = r.client.ZAdd(ctx, historyKey, redis.Z{
		Score:  float64(input.Record.Timestamp.UnixNano()),
		Member: string(recordJSON),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add roll record: %w", err)
	}

	return nil
}

// GetRollHistory retrieves roll records newest first
func (r *redisRepository) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	historyKey := fmt.Sprintf("%s%s", historyKeyPrefix, input.Passcode)

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	members, err := r.client.ZRevRange(ctx, historyKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll history: %w", err)
	}

	records := make([]*models.RollRecord, 0, len(members))
	for _, member := range members {
		var record models.RollRecord
		if err := json.Unmarshal([]byte(member), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll record: %w", err)
		}
		records = append(records, &record)
	}

	return &GetRollHistoryOutput{
		Records: records,
	}, nil
}

// DeleteRollHistory drops a room's entire history
func (r *redisRepository) DeleteRollHistory(ctx context.Context, input *DeleteRollHistoryInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	historyKey := fmt.Sprintf("%s%s", historyKeyPrefix, input.Passcode)
	if err := r.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("failed to delete roll history: %w", err)
	}

	return nil
}
