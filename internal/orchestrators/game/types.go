package game

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// Status is the session's game state
type Status string

// Game states
const (
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
	StatusVictory  Status = "victory"
)

// Ended reports whether the session accepts no further ticks
func (s Status) Ended() bool {
	return s == StatusGameOver || s == StatusVictory
}

// Intents is one tick of player input. Directions are level-sensitive and
// read every tick. Attack, Interact, Pause and Reset are edge-triggered:
// the input collaborator sets them only on the tick the press happened.
type Intents struct {
	Up    bool `yaml:"up"`
	Down  bool `yaml:"down"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`

	Attack   bool `yaml:"attack"`
	Interact bool `yaml:"interact"`
	Pause    bool `yaml:"pause"`
	// Reset disarms the current room's encounter
	Reset bool `yaml:"reset"`

	// Trade picks a trader menu entry while the menu is open
	Trade entities.TradeOption `yaml:"trade"`
}

// NewGameInput defines the input for starting a game
type NewGameInput struct {
	// Slot is where level progress is saved. Empty uses saves.DefaultSlot.
	Slot string
}

// NewGameOutput defines the output for starting a game. SaveFailed is set
// when the initial save could not be written; the game still starts.
type NewGameOutput struct {
	SessionID   string
	LevelNumber int
	SaveFailed  bool
}

// LoadGameInput defines the input for resuming a saved game
type LoadGameInput struct {
	Slot string
}

// LoadGameOutput defines the output for resuming a saved game. Recovered
// is set when the save could not be used and a fresh game was started.
type LoadGameOutput struct {
	SessionID   string
	LevelNumber int
	Recovered   bool
}

// TickInput advances one session by Delta
type TickInput struct {
	SessionID string
	Delta     time.Duration
	Intents   Intents
}

// TickOutput reports the session state after the tick
type TickOutput struct {
	Status      Status
	LevelNumber int
	RoomID      int
	Report      TickReport
}

// TickReport lists what happened during one tick
type TickReport struct {
	Engaged      bool
	Cleared      bool
	Disarmed     bool
	RoomSwitched bool
	Attack       *combat.AttackOutcome
	EnemyHits    []combat.EnemyHit
	Boss         entities.BossOutcome
	Trade        entities.TradeResult
	LevelChanged bool
	// SaveFailed is set when the level transition could not be saved. The
	// transition still happens.
	SaveFailed bool
}

// FrameInput requests the render state of a session
type FrameInput struct {
	SessionID string
}

// FrameOutput defines the output for Frame
type FrameOutput struct {
	Frame *Frame
}

// Frame is everything the rendering collaborator draws for one tick
type Frame struct {
	Status      Status
	LevelNumber int
	Background  string
	CurrentRoom int
	Rooms       []RoomView
	Player      PlayerView
	Enemies     []EnemyView
	Boss        *BossView
	Trader      *TraderView
	Portal      *geometry.Rect
}

// RoomView is one room's outline. Curtain is set until the player has
// visited the room.
type RoomView struct {
	ID      int
	Type    dungeon.RoomType
	Bounds  geometry.Rect
	Curtain bool
	State   dungeon.EncounterState
}

// PlayerView carries the player box and bar ratios
type PlayerView struct {
	Bounds       geometry.Rect
	HealthRatio  float64
	ArmorRatio   float64
	StaminaRatio float64
	Balance      int
	Weapon       entities.WeaponType
}

// EnemyView is one enemy of the current room
type EnemyView struct {
	ID          int
	Kind        entities.EnemyType
	Bounds      geometry.Rect
	HealthRatio float64
}

// BossView is the boss of the current room. DangerZone is set while the
// boss is telegraphing.
type BossView struct {
	Bounds      geometry.Rect
	HealthRatio float64
	DangerZone  *geometry.Rect
}

// TraderView is the trader marker and menu state
type TraderView struct {
	Bounds   geometry.Rect
	MenuOpen bool
	Result   entities.TradeResult
}

// EndSessionInput defines the input for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the output for ending a session
type EndSessionOutput struct{}
