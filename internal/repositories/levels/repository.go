// Package levels supplies authored level data to the game
package levels

//go:generate mockgen -destination=mock/mock_repository.go -package=levelsmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels Repository

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
)

// Repository looks up level data by number
type Repository interface {
	// Get returns the data for one level
	// Returns errors.InvalidArgument for a number below 1 or unparseable data
	// Returns errors.NotFound if no such level exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the available level numbers in ascending order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a level
type GetInput struct {
	Number int
}

// GetOutput defines the output for getting a level
type GetOutput struct {
	Data *dungeon.LevelData
}

// ListInput defines the input for listing levels
type ListInput struct{}

// ListOutput defines the output for listing levels
type ListOutput struct {
	Numbers []int
}

// FileName returns the file a level is stored under
func FileName(number int) string {
	return fmt.Sprintf("level%d.yaml", number)
}
