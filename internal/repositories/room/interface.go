package room

import (
	"context"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

// Repository defines the interface for the room registry
type Repository interface {
	// SaveRoom persists a room
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by passcode
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// DeleteRoom removes a room; later lookups fail with ErrRoomNotFound
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// ListRooms retrieves all live rooms
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)
}
