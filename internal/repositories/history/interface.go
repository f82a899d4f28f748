package history

import (
	"context"
)

// Repository defines the interface for the roll-history ledger
type Repository interface {
	// AddRollRecord appends a settled roll to a room's history
	AddRollRecord(ctx context.Context, input *AddRollRecordInput) error

	// GetRollHistory retrieves a room's most recent rolls, newest first
	GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error)

	// DeleteRollHistory removes a room's history when the room is torn down
	DeleteRollHistory(ctx context.Context, input *DeleteRollHistoryInput) error
}
