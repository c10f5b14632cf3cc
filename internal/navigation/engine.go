// Package navigation decides whether an actor may move along one axis and
// whether that move carries it into a neighboring room.
package navigation

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=navigationmock github.com/KirkDiggler/rpg-dungeon/internal/navigation Engine

// Engine resolves single-axis moves against the room graph
type Engine interface {
	// ResolveMove evaluates one axis of movement. Diagonal input is two calls.
	ResolveMove(input *ResolveMoveInput) (*ResolveMoveOutput, error)
}

// ResolveMoveInput is a proposed displacement of actor along Axis.
// Delta is already scaled by speed and frame time.
type ResolveMoveInput struct {
	Level   *dungeon.Level
	Current *dungeon.Room
	Actor   geometry.Rect
	Axis    geometry.Axis
	Delta   float64
}

// ResolveMoveOutput is the tri-state result: a free move, a blocked move,
// or a move that switches the current room to NextRoom. Actor is where the
// actor ends up and equals the input box when the move is blocked.
type ResolveMoveOutput struct {
	CanMove      bool
	SwitchesRoom bool
	NextRoom     *dungeon.Room
	Actor        geometry.Rect
}

// Config holds the dependencies for the navigation engine
type Config struct {
	Logger *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	return nil
}

type engine struct {
	logger *slog.Logger
}

// NewEngine creates a navigation engine
func NewEngine(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &engine{logger: logger}, nil
}

// ResolveMove implements Engine
func (e *engine) ResolveMove(input *ResolveMoveInput) (*ResolveMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Level == nil {
		vb.RequiredField("level")
	}
	if input.Current == nil {
		vb.RequiredField("current")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	room := input.Current.Bounds()
	axis := input.Axis
	moved := input.Actor.Shift(axis, input.Delta)

	// Only the leading edge can leave the room. A box still straddling the
	// edge it came through moves freely away from it.
	exitLow := input.Delta < 0 && moved.Min(axis) < room.Min(axis)
	exitHigh := input.Delta > 0 && moved.Max(axis) > room.Max(axis)
	if !exitLow && !exitHigh {
		return &ResolveMoveOutput{CanMove: true, Actor: moved}, nil
	}

	blocked := &ResolveMoveOutput{Actor: input.Actor}
	if input.Current.Active() {
		return blocked, nil
	}

	cross := crossAxis(axis)

	for _, n := range input.Level.Neighbors(input.Current) {
		nb := n.Bounds()

		sharesEdge := (exitLow && geometry.EdgesTouch(nb.Max(axis), room.Min(axis))) ||
			(exitHigh && geometry.EdgesTouch(nb.Min(axis), room.Max(axis)))
		if !sharesEdge {
			continue
		}

		if !geometry.Overlaps1D(
			input.Actor.Min(cross), input.Actor.Max(cross),
			nb.Min(cross), nb.Max(cross),
			geometry.MinOverlapFraction,
		) {
			continue
		}

		clamped := geometry.Clamp(input.Actor.Min(cross), nb.Min(cross), nb.Max(cross)-input.Actor.Extent(cross))
		e.logger.Debug("room switch",
			"from", input.Current.ID(),
			"to", n.ID(),
			"axis", axis.String(),
		)
		return &ResolveMoveOutput{
			CanMove:      true,
			SwitchesRoom: true,
			NextRoom:     n,
			Actor:        moved.WithMin(cross, clamped),
		}, nil
	}

	return blocked, nil
}

func crossAxis(a geometry.Axis) geometry.Axis {
	if a == geometry.AxisX {
		return geometry.AxisY
	}
	return geometry.AxisX
}
