package dungeon

import (
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/geometry"
)

// BuildConfig tunes level construction
type BuildConfig struct {
	Logger *slog.Logger
}

func (c *BuildConfig) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Build validates level data and assembles the room graph. Structural
// problems fail the build with an InvalidArgument error listing every
// offending field. Neighbor ids that point nowhere only degrade
// connectivity: they are logged and skipped.
func Build(data *LevelData, cfg *BuildConfig) (*Level, error) {
	if data == nil {
		return nil, errors.InvalidArgument("level data is required")
	}
	log := cfg.logger().With("level_number", data.Number)

	if err := validate(data); err != nil {
		return nil, err
	}

	level := &Level{
		number:     data.Number,
		background: data.Background,
		rooms:      make([]*Room, 0, len(data.Rooms)),
		byID:       make(map[int]*Room, len(data.Rooms)),
	}

	vb := errors.NewValidationBuilder()
	for i := range data.Rooms {
		rd := &data.Rooms[i]
		payload, err := buildPayload(rd)
		if err != nil {
			vb.InvalidField(fmt.Sprintf("rooms[%d]", i), errors.GetMessage(err))
			continue
		}

		room := NewRoom(rd.ID, rd.Bounds, payload)
		level.rooms = append(level.rooms, room)
		level.byID[room.id] = room

		switch room.Type() {
		case RoomTypeSpawn:
			level.spawn = room
		case RoomTypePortal:
			level.portal = room
		case RoomTypeTrader:
			level.trader = room
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	linkNeighbors(level, data, log)
	warnUnreachable(level, log)

	log.Info("level built",
		"rooms", len(level.rooms),
		"spawn_room", level.spawn.id,
	)
	return level, nil
}

func validate(data *LevelData) error {
	vb := errors.NewValidationBuilder()

	if data.Number < 1 {
		vb.InvalidField("number", "must be at least 1")
	}
	if len(data.Rooms) == 0 {
		vb.Field("rooms", "must not be empty")
	}

	seen := make(map[int]bool, len(data.Rooms))
	counts := make(map[RoomType]int)
	for i := range data.Rooms {
		rd := &data.Rooms[i]
		field := fmt.Sprintf("rooms[%d]", i)

		if seen[rd.ID] {
			vb.Fieldf(field+".id", "duplicate room id %d", rd.ID)
		}
		seen[rd.ID] = true

		errors.ValidatePositive(field+".bounds.width", rd.Bounds.Width, vb)
		errors.ValidatePositive(field+".bounds.height", rd.Bounds.Height, vb)

		if rd.Type == "" {
			vb.RequiredField(field + ".type")
			continue
		}
		errors.ValidateEnum(field+".type", rd.Type, RoomTypes(), vb)
		counts[RoomType(rd.Type)]++

		switch RoomType(rd.Type) {
		case RoomTypeSpawn:
			if rd.Spawn == nil {
				vb.RequiredField(field + ".spawn")
			} else if !rd.Bounds.ContainsRect(geometry.NewRect(rd.Spawn.X, rd.Spawn.Y, entities.PlayerSize, entities.PlayerSize)) {
				vb.InvalidField(field+".spawn", "player would not fit inside the room")
			}
		case RoomTypeFight:
			for j, ed := range rd.Enemies {
				errors.ValidateEnum(fmt.Sprintf("%s.enemies[%d].type", field, j), ed.Type, entities.EnemyTypes(), vb)
			}
		case RoomTypePortal:
			if rd.Portal == nil {
				vb.RequiredField(field + ".portal")
			}
		case RoomTypeTrader:
			if rd.Trader == nil {
				vb.RequiredField(field + ".trader")
			}
		case RoomTypeBoss:
			if rd.Boss == nil {
				vb.RequiredField(field + ".boss")
			}
		}
	}

	if n := counts[RoomTypeSpawn]; n != 1 {
		vb.Fieldf("rooms", "must contain exactly one spawn room, found %d", n)
	}
	if n := counts[RoomTypePortal]; n > 1 {
		vb.Fieldf("rooms", "must contain at most one portal room, found %d", n)
	}
	if n := counts[RoomTypeTrader]; n > 1 {
		vb.Fieldf("rooms", "must contain at most one trader room, found %d", n)
	}

	return vb.Build()
}

func buildPayload(rd *RoomData) (Payload, error) {
	switch RoomType(rd.Type) {
	case RoomTypeSpawn:
		return SpawnPayload{Point: *rd.Spawn}, nil
	case RoomTypeFight:
		set := entities.NewEnemySet()
		for _, ed := range rd.Enemies {
			enemy, err := entities.NewEnemy(entities.EnemyType(ed.Type), ed.Position)
			if err != nil {
				return nil, err
			}
			set.Add(enemy)
		}
		return FightPayload{Enemies: set}, nil
	case RoomTypeTrader:
		return TraderPayload{Trader: entities.NewTrader(*rd.Trader)}, nil
	case RoomTypePortal:
		return PortalPayload{Portal: entities.NewPortal(*rd.Portal)}, nil
	case RoomTypeBoss:
		return BossPayload{Boss: entities.NewDragon(*rd.Boss)}, nil
	case RoomTypeCorridor:
		return CorridorPayload{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown room type %q", rd.Type)
	}
}

// linkNeighbors resolves declared neighbor ids and mirrors every edge so
// adjacency is undirected regardless of which side declared it.
func linkNeighbors(level *Level, data *LevelData, log *slog.Logger) {
	for _, rd := range data.Rooms {
		room := level.byID[rd.ID]
		for _, nid := range rd.Neighbors {
			if nid == rd.ID {
				log.Warn("room lists itself as neighbor", "room", rd.ID)
				continue
			}
			neighbor, ok := level.byID[nid]
			if !ok {
				log.Warn("neighbor not found, edge skipped", "room", rd.ID, "neighbor", nid)
				continue
			}
			room.addNeighbor(nid)
			neighbor.addNeighbor(rd.ID)
		}
	}
}

// warnUnreachable walks the graph from the spawn room and logs rooms the
// player can never enter
func warnUnreachable(level *Level, log *slog.Logger) {
	visited := mapset.New[int]()
	queue := []*Room{level.spawn}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current.id) {
			continue
		}
		visited.Put(current.id)

		for _, n := range level.Neighbors(current) {
			if !visited.Has(n.id) {
				queue = append(queue, n)
			}
		}
	}

	for _, r := range level.rooms {
		if !visited.Has(r.id) {
			log.Warn("room unreachable from spawn", "room", r.id, "type", r.Type())
		}
	}
}
