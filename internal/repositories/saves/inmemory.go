package saves

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository keeps saves for the lifetime of the process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]Record
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory repository. A nil clock uses
// wall time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]Record),
	}
}

// Save stores the record for a slot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	rec := input.Record
	rec.SavedAt = r.clock.Now()
	if err := rec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid save record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Slot] = rec

	return &SaveOutput{Record: rec}, nil
}

// Load returns the record for a slot
func (r *InMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.store[input.Slot]
	if !ok {
		return nil, errors.NotFoundf("save %s not found", input.Slot)
	}
	return &LoadOutput{Record: rec}, nil
}

// Delete removes the record for a slot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.Slot]; !ok {
		return nil, errors.NotFoundf("save %s not found", input.Slot)
	}
	delete(r.store, input.Slot)
	return &DeleteOutput{}, nil
}
