// Package saves persists the between-level save record
package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=savesmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// DefaultSlot is used when the caller does not name a slot
const DefaultSlot = "default"

// Repository stores one save record per slot
type Repository interface {
	// Save writes the record for a slot, replacing any previous one
	// Returns errors.InvalidArgument for an empty slot or invalid record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the record for a slot
	// Returns errors.NotFound if the slot has never been saved
	// Returns errors.DataLoss if the stored record cannot be read
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete removes the record for a slot
	// Returns errors.NotFound if the slot has no record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Record is what survives between levels
type Record struct {
	CurrentLevel int                   `json:"current_level"`
	Player       entities.PlayerRecord `json:"player"`
	SavedAt      time.Time             `json:"saved_at"`
}

// Validate checks the record before it is stored or after it is read
func (r *Record) Validate() error {
	if r == nil {
		return errors.InvalidArgument("record is required")
	}
	vb := errors.NewValidationBuilder()
	if r.CurrentLevel < 1 {
		vb.Fieldf("current_level", "must be at least 1, got %d", r.CurrentLevel)
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return r.Player.Validate()
}

// SaveInput defines the input for saving
type SaveInput struct {
	Slot   string
	Record Record
}

// SaveOutput returns the record as stored, with SavedAt filled in
type SaveOutput struct {
	Record Record
}

// LoadInput defines the input for loading
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading
type LoadOutput struct {
	Record Record
}

// DeleteInput defines the input for deleting
type DeleteInput struct {
	Slot string
}

// DeleteOutput defines the output for deleting
type DeleteOutput struct{}

const errSlotEmpty = "slot cannot be empty"
