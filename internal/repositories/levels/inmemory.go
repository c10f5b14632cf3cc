package levels

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// InMemoryRepository serves level data held in memory
type InMemoryRepository struct {
	mu     sync.RWMutex
	levels map[int]*dungeon.LevelData
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a repository holding the given levels, keyed by
// their numbers
func NewInMemory(levels ...*dungeon.LevelData) *InMemoryRepository {
	r := &InMemoryRepository{levels: make(map[int]*dungeon.LevelData, len(levels))}
	for _, l := range levels {
		r.Put(l)
	}
	return r
}

// Put adds or replaces a level
func (r *InMemoryRepository) Put(data *dungeon.LevelData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels[data.Number] = data
}

// Get returns a level by number
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Number < 1 {
		return nil, errors.InvalidArgumentf("level number must be at least 1, got %d", input.Number)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.levels[input.Number]
	if !ok {
		return nil, errors.NotFoundf("level %d not found", input.Number)
	}
	return &GetOutput{Data: data}, nil
}

// List returns the held level numbers in order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &ListOutput{Numbers: slices.Sorted(maps.Keys(r.levels))}, nil
}
