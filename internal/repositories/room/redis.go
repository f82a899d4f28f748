package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix = "room:"
	liveRoomsKey  = "live_rooms"
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom persists a room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.Passcode == "" {
		return errors.New("room passcode cannot be empty")
	}

	// Marshal the room to JSON
	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	// Save the room and index it in one pipeline
	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.Passcode)
	pipe.Set(ctx, roomKey, roomJSON, 0)
	pipe.SAdd(ctx, liveRoomsKey, input.Room.Passcode)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by passcode from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Passcode)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// DeleteRoom removes a room and its index entry
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Passcode)
	pipe.Del(ctx, roomKey)
	pipe.SRem(ctx, liveRoomsKey, input.Passcode)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// ListRooms retrieves all live rooms
func (r *redisRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	passcodes, err := r.client.SMembers(ctx, liveRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(passcodes))
	for _, passcode := range passcodes {
		room, err := r.GetRoom(ctx, &GetRoomInput{Passcode: passcode})
		if err != nil {
			// The index can briefly lag a delete; skip the stale entry.
			if errors.Is(err, ErrRoomNotFound) {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return &ListRoomsOutput{
		Rooms: rooms,
	}, nil
}
