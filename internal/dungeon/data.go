package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/geometry"

// LevelData is the authored description of a level as supplied by the
// level data source
type LevelData struct {
	Number     int        `json:"number" yaml:"number"`
	Background string     `json:"background" yaml:"background"`
	Rooms      []RoomData `json:"rooms" yaml:"rooms"`
}

// RoomData describes one room. Only the payload field matching Type is read.
type RoomData struct {
	ID        int           `json:"id" yaml:"id"`
	Type      string        `json:"type" yaml:"type"`
	Bounds    geometry.Rect `json:"bounds" yaml:"bounds"`
	Neighbors []int         `json:"neighbors" yaml:"neighbors"`

	Spawn   *geometry.Vec2 `json:"spawn,omitempty" yaml:"spawn,omitempty"`
	Enemies []EnemyData    `json:"enemies,omitempty" yaml:"enemies,omitempty"`
	Portal  *geometry.Vec2 `json:"portal,omitempty" yaml:"portal,omitempty"`
	Trader  *geometry.Vec2 `json:"trader,omitempty" yaml:"trader,omitempty"`
	Boss    *geometry.Vec2 `json:"boss,omitempty" yaml:"boss,omitempty"`
}

// EnemyData places one enemy
type EnemyData struct {
	Type     string        `json:"type" yaml:"type"`
	Position geometry.Vec2 `json:"position" yaml:"position"`
}
