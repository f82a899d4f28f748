package room

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

// memoryRepository implements the Repository interface with an in-process
// map. This is the default registry: all state lives and dies with the
// process.
type memoryRepository struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

// NewMemory creates a new in-memory room repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rooms: make(map[string]*models.Room),
	}
}

// SaveRoom stores a deep copy of the room
func (r *memoryRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.Passcode == "" {
		return errors.New("room passcode cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy on write so callers cannot mutate stored state through their
	// own pointer after the save.
	r.rooms[input.Room.Passcode] = input.Room.Clone()

	return nil
}

// GetRoom retrieves a deep copy of a room by passcode
func (r *memoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[input.Passcode]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room.Clone(), nil
}

// DeleteRoom removes a room from the registry
func (r *memoryRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rooms, input.Passcode)

	return nil
}

// ListRooms returns deep copies of all live rooms
func (r *memoryRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room.Clone())
	}

	return &ListRoomsOutput{
		Rooms: rooms,
	}, nil
}
