// Package worldmap defines the map constants, the spawn table, and the
// sentinel errors of the worldmap subpackage of github.com/katalvlaran/zarena.
package worldmap

import (
	"errors"

	"github.com/katalvlaran/zarena/geom"
)

// Hard map-format requirements. Every map raster must be exactly this size,
// and every actor is a disk of ActorRadius world units.
const (
	// Width is the required map width in pixels (= world units).
	Width = 600
	// Height is the required map height in pixels (= world units).
	Height = 400
	// ActorRadius is the radius obstacles are dilated by.
	ActorRadius = 6
)

// Sentinel errors for map construction and loading.
var (
	// ErrMapSize indicates the input raster is not exactly Width×Height.
	ErrMapSize = errors.New("worldmap: map raster must be exactly 600x400")
	// ErrNoZombieSpawns indicates the spawn table declares no zombie spawns.
	ErrNoZombieSpawns = errors.New("worldmap: at least one zombie spawn point is required")
	// ErrBadSpawnLine indicates a malformed line in the spawn-point file.
	ErrBadSpawnLine = errors.New("worldmap: malformed spawn-point line")
	// ErrSpawnOutOfBounds indicates a spawn point outside the map raster.
	ErrSpawnOutOfBounds = errors.New("worldmap: spawn point outside map bounds")
	// ErrEmptyGrid describes an empty or non-rectangular obstacle grid. No
	// constructor returns it: NewFromGrid reports such grids as ErrMapSize.
	ErrEmptyGrid = errors.New("worldmap: obstacle grid must be rectangular and non-empty")
)

// SpawnTable lists the fixed spawn locations declared by a map directory.
// Zombies must have at least one spawn point; robot stations may be empty.
type SpawnTable struct {
	Player   geom.Position   // Where the player appears.
	Zombies  []geom.Position // Ordered zombie spawn points (non-empty).
	Stations []geom.Position // Ordered robot stations.
}

// validate checks the table against the map bounds.
func (t SpawnTable) validate() error {
	if len(t.Zombies) == 0 {
		return ErrNoZombieSpawns
	}
	all := make([]geom.Position, 0, 1+len(t.Zombies)+len(t.Stations))
	all = append(all, t.Player)
	all = append(all, t.Zombies...)
	all = append(all, t.Stations...)
	for _, p := range all {
		if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= Height {
			return ErrSpawnOutOfBounds
		}
	}

	return nil
}
