package grid

import (
	"math"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/worldmap"
)

// DiscretizedMap is a coarse occupancy grid over the inflated world raster.
// It is immutable once built and safe for concurrent reads.
type DiscretizedMap struct {
	ratio    int
	width    int // cells per row
	height   int // rows
	occupied []bool
}

// New builds a DiscretizedMap from m at the given ratio. A cell is occupied
// iff any inflated pixel inside its D×D footprint is an obstacle; cells that
// overhang the raster edge test only the in-bounds pixels.
//
// Complexity: O(W×H) over the source raster.
func New(m *worldmap.MapData, ratio int) (*DiscretizedMap, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if ratio < 1 {
		return nil, ErrBadRatio
	}
	w := (worldmap.Width + ratio - 1) / ratio
	h := (worldmap.Height + ratio - 1) / ratio
	occupied := make([]bool, w*h)
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			occupied[cy*w+cx] = cellBlocked(m, cx, cy, ratio)
		}
	}

	return &DiscretizedMap{ratio: ratio, width: w, height: h, occupied: occupied}, nil
}

// cellBlocked scans the D×D pixel footprint of cell (cx, cy).
func cellBlocked(m *worldmap.MapData, cx, cy, ratio int) bool {
	for py := cy * ratio; py < (cy+1)*ratio && py < worldmap.Height; py++ {
		for px := cx * ratio; px < (cx+1)*ratio && px < worldmap.Width; px++ {
			if m.InflatedAt(px, py) {
				return true
			}
		}
	}

	return false
}

// Ratio returns the discretization ratio D.
func (dm *DiscretizedMap) Ratio() int { return dm.ratio }

// Width returns the grid width in cells.
func (dm *DiscretizedMap) Width() int { return dm.width }

// Height returns the grid height in cells.
func (dm *DiscretizedMap) Height() int { return dm.height }

// InBounds reports whether cell (cx, cy) lies within the grid.
func (dm *DiscretizedMap) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < dm.width && cy >= 0 && cy < dm.height
}

// OpenAt reports whether cell (cx, cy) is in bounds and unoccupied.
func (dm *DiscretizedMap) OpenAt(cx, cy int) bool {
	return dm.InBounds(cx, cy) && !dm.occupied[cy*dm.width+cx]
}

// openAtPoint tests the cell under a fractional discretized point.
func (dm *DiscretizedMap) openAtPoint(p geom.Position) bool {
	return dm.OpenAt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// PathIsClear walks the segment start→goal (both in discretized coordinates)
// at a fixed step, testing the cell under each sample. It returns whether
// the whole segment is clear and the furthest traversable point reached.
//
// Samples within the exclusion radius of either endpoint are skipped: they
// count as traversable without being tested. PathIsClear(p, p) is clear at p.
//
// Complexity: O(distance/step).
func (dm *DiscretizedMap) PathIsClear(start, goal geom.Position, opts ...RaycastOption) Clearance {
	cfg := RaycastOptions{Step: 0.5 * float64(dm.ratio)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Step <= 0 {
		cfg.Step = 0.5 * float64(dm.ratio)
	}

	dist := start.Distance(goal)
	if dist == 0 {
		return Clearance{Clear: true, Furthest: start, Valid: true}
	}

	// Sample count: every cfg.Step along the segment, plus the goal itself.
	steps := int(math.Ceil(dist / cfg.Step))
	var (
		furthest geom.Position
		valid    bool
	)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geom.NewPosition(start.X+(goal.X-start.X)*t, start.Y+(goal.Y-start.Y)*t)

		// Endpoint exclusion: trust without testing.
		if cfg.ExclusionRadius > 0 &&
			(p.Distance(start) < cfg.ExclusionRadius || p.Distance(goal) < cfg.ExclusionRadius) {
			furthest, valid = p, true
			continue
		}
		if !dm.openAtPoint(p) {
			return Clearance{Clear: false, Furthest: furthest, Valid: valid}
		}
		furthest, valid = p, true
	}

	return Clearance{Clear: true, Furthest: goal, Valid: true}
}

// PathIsClearInOriginal is PathIsClear for world-coordinate endpoints:
// the inputs are divided by the ratio before the walk, and the furthest
// point is scaled back to world coordinates.
func (dm *DiscretizedMap) PathIsClearInOriginal(start, goal geom.Position, opts ...RaycastOption) Clearance {
	f := float64(dm.ratio)
	c := dm.PathIsClear(start.Scale(1/f), goal.Scale(1/f), opts...)
	switch {
	case c.Clear:
		// Avoid round-tripping the goal through the division.
		c.Furthest = goal
	case c.Valid:
		c.Furthest = c.Furthest.Scale(f)
	}

	return c
}

// CellOf maps a world-coordinate position to its containing cell.
func (dm *DiscretizedMap) CellOf(p geom.Position) Cell {
	return Cell{
		X: int(math.Floor(p.X / float64(dm.ratio))),
		Y: int(math.Floor(p.Y / float64(dm.ratio))),
	}
}

// WorldOf maps a cell back to world coordinates (its top-left corner).
// CellOf∘WorldOf is the identity; WorldOf∘CellOf is the identity on
// cell-aligned world points.
func (dm *DiscretizedMap) WorldOf(c Cell) geom.Position {
	return geom.NewPosition(float64(c.X*dm.ratio), float64(c.Y*dm.ratio))
}
