package worldmap

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/katalvlaran/zarena/geom"
)

// MapData is the static world the arena is played on. It is immutable once
// constructed and safe for concurrent reads.
//
// Two rasters are kept in parallel:
//
//   - displayed: the obstacle raster as drawn (one bit per pixel).
//   - inflated:  the same raster with every obstacle pixel dilated by
//     ActorRadius. All traversability queries use this one, so an actor
//     position is a single point test.
type MapData struct {
	displayed []bool // row-major, true = obstacle
	inflated  []bool // row-major, true = obstacle after dilation
	spawns    SpawnTable
}

// New builds a MapData from a decoded map image and a spawn table.
// A pixel is free iff its colour is pure white; every other colour is an
// obstacle. Returns ErrMapSize unless the image is exactly Width×Height.
//
// Complexity: O(W×H×R²) for the dilation pass.
func New(img image.Image, spawns SpawnTable) (*MapData, error) {
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, ErrMapSize
	}
	displayed := make([]bool, Width*Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Pure white (65535 per channel) is free; anything else blocks.
			displayed[y*Width+x] = !(r == 0xffff && g == 0xffff && bl == 0xffff)
		}
	}

	return fromRaster(displayed, spawns)
}

// NewFromGrid builds a MapData from an explicit obstacle grid
// (grid[y][x] == true means obstacle). The grid must be exactly
// Height rows of Width columns. Intended for programmatic maps.
func NewFromGrid(grid [][]bool, spawns SpawnTable) (*MapData, error) {
	if len(grid) != Height {
		return nil, ErrMapSize
	}
	displayed := make([]bool, Width*Height)
	for y, row := range grid {
		if len(row) != Width {
			return nil, ErrMapSize
		}
		copy(displayed[y*Width:(y+1)*Width], row)
	}

	return fromRaster(displayed, spawns)
}

// fromRaster finishes construction: validates spawns and dilates obstacles.
func fromRaster(displayed []bool, spawns SpawnTable) (*MapData, error) {
	if err := spawns.validate(); err != nil {
		return nil, err
	}
	m := &MapData{
		displayed: displayed,
		inflated:  inflate(displayed),
		spawns: SpawnTable{
			Player:   spawns.Player,
			Zombies:  append([]geom.Position(nil), spawns.Zombies...),
			Stations: append([]geom.Position(nil), spawns.Stations...),
		},
	}

	return m, nil
}

// inflate dilates every obstacle pixel by the actor radius. The stencil is
// the Chebyshev ball (a square), not the Euclidean disk: the square is a
// conservative superset of the disk, and it keeps dilated rectangles
// rectangular, so obstacle corners stay crisp under discretization instead
// of smearing into staircases.
func inflate(displayed []bool) []bool {
	inflated := make([]bool, Width*Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !displayed[y*Width+x] {
				continue
			}
			for ny := max(0, y-ActorRadius); ny <= min(Height-1, y+ActorRadius); ny++ {
				for nx := max(0, x-ActorRadius); nx <= min(Width-1, x+ActorRadius); nx++ {
					inflated[ny*Width+nx] = true
				}
			}
		}
	}

	return inflated
}

// PositionIsValid reports whether p lies inside the map and its inflated
// pixel is free. This is the single traversability predicate of the world.
func (m *MapData) PositionIsValid(p geom.Position) bool {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	return !m.inflated[y*Width+x]
}

// ObstacleAt reports whether displayed pixel (x, y) is an obstacle.
// Out-of-bounds pixels count as obstacles.
func (m *MapData) ObstacleAt(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return true
	}

	return m.displayed[y*Width+x]
}

// InflatedAt reports whether inflated pixel (x, y) is an obstacle.
// Out-of-bounds pixels count as obstacles.
func (m *MapData) InflatedAt(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return true
	}

	return m.inflated[y*Width+x]
}

// PlayerSpawn returns the player's spawn position.
func (m *MapData) PlayerSpawn() geom.Position {
	return m.spawns.Player
}

// ZombieSpawns returns a copy of the ordered zombie spawn points.
func (m *MapData) ZombieSpawns() []geom.Position {
	return append([]geom.Position(nil), m.spawns.Zombies...)
}

// RobotStations returns a copy of the ordered robot stations.
func (m *MapData) RobotStations() []geom.Position {
	return append([]geom.Position(nil), m.spawns.Stations...)
}

// RandomZombieSpawn picks one of the zombie spawn points uniformly.
func (m *MapData) RandomZombieSpawn(rng *rand.Rand) geom.Position {
	return m.spawns.Zombies[rng.Intn(len(m.spawns.Zombies))]
}

// Displayed renders the displayed raster into a fresh grayscale image:
// obstacles black, free space white. Used as the renderer's background.
func (m *MapData) Displayed() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := color.Gray{Y: 0xff}
			if m.displayed[y*Width+x] {
				c = color.Gray{Y: 0x00}
			}
			img.SetGray(x, y, c)
		}
	}

	return img
}
