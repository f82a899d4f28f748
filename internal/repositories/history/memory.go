package history

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

// memoryRepository implements the Repository interface with an in-process
// map keyed by passcode. Records are held in append order.
type memoryRepository struct {
	mu      sync.RWMutex
	records map[string][]*models.RollRecord
}

// NewMemory creates a new in-memory history repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		records: make(map[string][]*models.RollRecord),
	}
}

// AddRollRecord appends a roll record to the room's history
func (r *memoryRepository) AddRollRecord(ctx context.Context, input *AddRollRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.Passcode == "" {
		return errors.New("record passcode cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[input.Record.Passcode] = append(r.records[input.Record.Passcode], input.Record)

	return nil
}

// GetRollHistory retrieves roll records newest first
func (r *memoryRepository) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.records[input.Passcode]

	limit := len(stored)
	if input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}

	// Newest first
	records := make([]*models.RollRecord, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, stored[i])
	}

	return &GetRollHistoryOutput{
		Records: records,
	}, nil
}

// DeleteRollHistory drops a room's entire history
func (r *memoryRepository) DeleteRollHistory(ctx context.Context, input *DeleteRollHistoryInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, input.Passcode)

	return nil
}
