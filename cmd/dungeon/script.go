package main

import (
	"bytes"
	"context"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
)

// DefaultTickRate matches the display refresh the simulation is tuned for
const DefaultTickRate = 60

// Script is a recorded sequence of player intents. Trade takes the menu
// entry number: 1 heal, 2 repair, 3 upgrade.
//
//	tick_rate: 60
//	steps:
//	  - repeat: 30
//	    intents: {right: true}
//	  - intents: {attack: true}
type Script struct {
	TickRate int    `yaml:"tick_rate"`
	Steps    []Step `yaml:"steps"`
}

// Step repeats one set of intents. Repeat defaults to 1.
type Step struct {
	Repeat  int          `yaml:"repeat"`
	Intents game.Intents `yaml:"intents"`
}

// ParseScript decodes and validates a script
func ParseScript(raw []byte) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse script")
	}

	vb := errors.NewValidationBuilder()
	if script.TickRate < 0 {
		vb.InvalidField("tick_rate", "must not be negative")
	}
	if len(script.Steps) == 0 {
		vb.RequiredField("steps")
	}
	for i := range script.Steps {
		if script.Steps[i].Repeat < 0 {
			vb.Fieldf("steps", "step %d: repeat must not be negative", i)
		}
		if script.Steps[i].Repeat == 0 {
			script.Steps[i].Repeat = 1
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if script.TickRate == 0 {
		script.TickRate = DefaultTickRate
	}
	return &script, nil
}

// Delta is the fixed update step of the script
func (s *Script) Delta() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// RunOptions controls how a script session starts
type RunOptions struct {
	Slot string
	// Load resumes from the save slot instead of starting a new game
	Load bool
}

// RunSummary is printed when a script finishes
type RunSummary struct {
	SessionID    string              `yaml:"session_id"`
	Ticks        int                 `yaml:"ticks"`
	Status       game.Status         `yaml:"status"`
	LevelNumber  int                 `yaml:"level"`
	RoomID       int                 `yaml:"room"`
	Recovered    bool                `yaml:"recovered,omitempty"`
	Kills        int                 `yaml:"kills"`
	RoomsCleared int                 `yaml:"rooms_cleared"`
	HealthRatio  float64             `yaml:"health_ratio"`
	ArmorRatio   float64             `yaml:"armor_ratio"`
	Balance      int                 `yaml:"balance"`
	Weapon       entities.WeaponType `yaml:"weapon"`
	SaveFailures int                 `yaml:"save_failures,omitempty"`
}

// runScript plays a script through a fresh or loaded session. It stops
// early once the game ends or ctx is cancelled; the summary then covers the
// ticks played so far.
func runScript(ctx context.Context, svc game.Service, script *Script, opts RunOptions) (*RunSummary, error) {
	if script == nil {
		return nil, errors.InvalidArgument("script is required")
	}

	summary := &RunSummary{}
	if opts.Load {
		out, err := svc.LoadGame(ctx, &game.LoadGameInput{Slot: opts.Slot})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load game")
		}
		summary.SessionID = out.SessionID
		summary.LevelNumber = out.LevelNumber
		summary.Recovered = out.Recovered
	} else {
		out, err := svc.NewGame(ctx, &game.NewGameInput{Slot: opts.Slot})
		if err != nil {
			return nil, errors.Wrap(err, "failed to start game")
		}
		summary.SessionID = out.SessionID
		summary.LevelNumber = out.LevelNumber
		if out.SaveFailed {
			summary.SaveFailures++
		}
	}
	defer func() {
		_, _ = svc.EndSession(context.WithoutCancel(ctx), &game.EndSessionInput{SessionID: summary.SessionID})
	}()

	summary.Status = game.StatusPlaying
	delta := script.Delta()

steps:
	for _, step := range script.Steps {
		for i := 0; i < step.Repeat; i++ {
			if ctx.Err() != nil {
				break steps
			}

			out, err := svc.Tick(ctx, &game.TickInput{
				SessionID: summary.SessionID,
				Delta:     delta,
				Intents:   step.Intents,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "tick %d failed", summary.Ticks+1)
			}
			summary.record(out)

			if out.Status.Ended() {
				break steps
			}
		}
	}

	frame, err := svc.Frame(context.WithoutCancel(ctx), &game.FrameInput{SessionID: summary.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read final frame")
	}
	summary.HealthRatio = frame.Frame.Player.HealthRatio
	summary.ArmorRatio = frame.Frame.Player.ArmorRatio
	summary.Balance = frame.Frame.Player.Balance
	summary.Weapon = frame.Frame.Player.Weapon

	return summary, nil
}

func (s *RunSummary) record(out *game.TickOutput) {
	s.Ticks++
	s.Status = out.Status
	s.LevelNumber = out.LevelNumber
	s.RoomID = out.RoomID

	report := out.Report
	if report.Attack != nil && report.Attack.Killed {
		s.Kills++
	}
	if report.Cleared {
		s.RoomsCleared++
	}
	if report.SaveFailed {
		s.SaveFailures++
	}
}
