package entities

import "github.com/KirkDiggler/rpg-dungeon/internal/geometry"

// PortalSize is the side of the portal marker
const PortalSize = 64.0

// Portal leads to the next level
type Portal struct {
	bounds geometry.Rect
}

// NewPortal places a portal at pos
func NewPortal(pos geometry.Vec2) *Portal {
	return &Portal{bounds: geometry.NewRect(pos.X, pos.Y, PortalSize, PortalSize)}
}

// Bounds returns the portal marker
func (p *Portal) Bounds() geometry.Rect { return p.bounds }
