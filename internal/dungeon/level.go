package dungeon

// Level is the room graph of one dungeon floor. It owns every room.
type Level struct {
	number     int
	background string
	rooms      []*Room
	byID       map[int]*Room

	spawn  *Room
	portal *Room
	trader *Room
}

// Number returns the level number
func (l *Level) Number() int { return l.number }

// Background returns the background reference for the renderer
func (l *Level) Background() string { return l.background }

// Rooms returns the rooms in authored order
func (l *Level) Rooms() []*Room {
	out := make([]*Room, len(l.rooms))
	copy(out, l.rooms)
	return out
}

// Room looks up a room by id
func (l *Level) Room(id int) (*Room, bool) {
	r, ok := l.byID[id]
	return r, ok
}

// SpawnRoom returns the single spawn room
func (l *Level) SpawnRoom() *Room { return l.spawn }

// PortalRoom returns the portal room, if the level has one
func (l *Level) PortalRoom() (*Room, bool) { return l.portal, l.portal != nil }

// TraderRoom returns the trader room, if the level has one
func (l *Level) TraderRoom() (*Room, bool) { return l.trader, l.trader != nil }

// Neighbors resolves a room's candidate neighbors through the level
func (l *Level) Neighbors(r *Room) []*Room {
	out := make([]*Room, 0, len(r.neighbors))
	for _, id := range r.neighbors {
		if n, ok := l.byID[id]; ok {
			out = append(out, n)
		}
	}
	return out
}
