package visgraph

import (
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
)

// ringOffsets enumerates the 8-neighbourhood of a cell as ring positions
// 0..7 in row-major order (centre skipped):
//
//	0 1 2
//	3 . 4
//	5 6 7
//
// With this numbering the four straight-through pairs — the patterns that
// mean "edge of a wall, not a corner" — are exactly the index pairs that
// sum to 7: {0,7}, {2,5}, {1,6}, {3,4}.
var ringOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// fourNeighbourSignatures are the sorted-index difference triples that mark
// an L-shaped 4-neighbour pattern as a vertex.
var fourNeighbourSignatures = [][3]int{
	{1, 1, 1}, {1, 1, 2}, {1, 2, 2}, {2, 1, 1}, {2, 2, 1}, {1, 2, 3}, {3, 2, 1},
}

// detector accumulates vertex candidates over one scan of the grid.
type detector struct {
	dm *grid.DiscretizedMap
	// runMember marks cells consumed by an already-recorded diagonal run,
	// so later cells of the same run do not place a second vertex.
	runMember map[grid.Cell]bool
	vertices  []geom.Position
}

// detectVertices scans the grid row-major and returns the raw (pre-dedup)
// vertex positions in discretized coordinates.
func detectVertices(dm *grid.DiscretizedMap) []geom.Position {
	d := &detector{dm: dm, runMember: make(map[grid.Cell]bool)}
	for cy := 0; cy < dm.Height(); cy++ {
		for cx := 0; cx < dm.Width(); cx++ {
			if dm.OpenAt(cx, cy) {
				continue
			}
			d.classify(grid.Cell{X: cx, Y: cy})
		}
	}

	return d.vertices
}

// occupiedRing returns the sorted ring indices of the occupied neighbours
// of c. Out-of-bounds neighbours count as unoccupied.
func (d *detector) occupiedRing(c grid.Cell) []int {
	occ := make([]int, 0, 8)
	for i, off := range ringOffsets {
		nx, ny := c.X+off[0], c.Y+off[1]
		if d.dm.InBounds(nx, ny) && !d.dm.OpenAt(nx, ny) {
			occ = append(occ, i)
		}
	}

	return occ
}

// classify applies the occupied-count pattern rules to one occupied cell and
// records a vertex when the pattern marks a corner or a diagonal run.
func (d *detector) classify(c grid.Cell) {
	occ := d.occupiedRing(c)
	switch len(occ) {
	case 0, 1:
		// Isolated block or line terminus: always a corner.
		d.place(c, occ)
	case 2:
		// A corner unless the two neighbours run straight through.
		if occ[0]+occ[1] != 7 {
			d.place(c, occ)
		}
	case 3:
		// Right-angle corner: consecutive index differences are {1,2}.
		d1, d2 := occ[1]-occ[0], occ[2]-occ[1]
		if (d1 == 1 && d2 == 2) || (d1 == 2 && d2 == 1) {
			d.place(c, occ)
		}
	case 4:
		sig := [3]int{occ[1] - occ[0], occ[2] - occ[1], occ[3] - occ[2]}
		for _, want := range fourNeighbourSignatures {
			if sig == want {
				d.place(c, occ)
				break
			}
		}
	case 5:
		d.classifyDiagonalRun(c, occ)
	default:
		// 6..8 occupied neighbours: interior cell, never a vertex.
	}
}

// classifyDiagonalRun handles the 5-occupied case: the three unoccupied ring
// indices indicate whether the cell lies on a thin diagonal wall, and if so
// in which direction the run extends.
func (d *detector) classifyDiagonalRun(c grid.Cell, occ []int) {
	free := unoccupiedOf(occ)
	var dir [2]int
	switch free {
	case [3]int{0, 1, 3}, [3]int{4, 6, 7}:
		dir = [2]int{-1, 1}
	case [3]int{1, 2, 4}, [3]int{3, 5, 6}:
		dir = [2]int{1, 1}
	default:
		return
	}

	// Walk the run in both directions over cells that are also 5-occupied.
	back, hitBack := d.walkRun(c, [2]int{-dir[0], -dir[1]})
	fwd, hitFwd := d.walkRun(c, dir)
	if hitBack || hitFwd {
		// The run already carries a vertex.
		return
	}

	// Mark every cell of the run and place a single vertex at its midpoint.
	for cur := back; ; cur = (grid.Cell{X: cur.X + dir[0], Y: cur.Y + dir[1]}) {
		d.runMember[cur] = true
		if cur == fwd {
			break
		}
	}
	mid := geom.NewPosition(
		float64(back.X+fwd.X)/2,
		float64(back.Y+fwd.Y)/2,
	)
	d.vertices = append(d.vertices, mid)
}

// walkRun follows dir from c while the next cell is occupied with exactly 5
// occupied neighbours. It returns the last cell of the run in that direction
// and whether a cell of an already-recorded run was reached.
func (d *detector) walkRun(c grid.Cell, dir [2]int) (grid.Cell, bool) {
	cur := c
	if d.runMember[cur] {
		return cur, true
	}
	for {
		next := grid.Cell{X: cur.X + dir[0], Y: cur.Y + dir[1]}
		if !d.dm.InBounds(next.X, next.Y) || d.dm.OpenAt(next.X, next.Y) {
			return cur, false
		}
		if len(d.occupiedRing(next)) != 5 {
			return cur, false
		}
		if d.runMember[next] {
			return next, true
		}
		cur = next
	}
}

// place records a vertex for corner cell c, committed to the cell's free
// flank: the occupied-neighbour offsets are summed and the vertex is shifted
// one cell against that mass. Vertices on the free side can see each other
// along an obstacle flank, which vertices on the boundary cells themselves
// cannot. Falls back to the detected cell when the flank is blocked.
func (d *detector) place(c grid.Cell, occ []int) {
	var sx, sy int
	for _, i := range occ {
		sx += ringOffsets[i][0]
		sy += ringOffsets[i][1]
	}
	out := grid.Cell{X: c.X - sign(sx), Y: c.Y - sign(sy)}
	if !d.dm.OpenAt(out.X, out.Y) {
		out = c
	}
	d.vertices = append(d.vertices, geom.NewPosition(float64(out.X), float64(out.Y)))
}

// sign returns -1, 0 or 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// unoccupiedOf returns the three ring indices missing from a sorted
// 5-element occupied list.
func unoccupiedOf(occ []int) [3]int {
	var free [3]int
	present := [8]bool{}
	for _, i := range occ {
		present[i] = true
	}
	n := 0
	for i := 0; i < 8; i++ {
		if !present[i] {
			free[n] = i
			n++
		}
	}

	return free
}

// deduplicate applies the cleanliness pass: repeatedly pick the vertex whose
// neighbourhood within threshold contains the most other vertices, delete
// those neighbours (keeping the chosen vertex), until every neighbourhood
// is empty.
func deduplicate(vertices []geom.Position, threshold float64) []geom.Position {
	kept := append([]geom.Position(nil), vertices...)
	for {
		bestIdx, bestCount := -1, 0
		var bestNeighbours []int
		for i, v := range kept {
			var neighbours []int
			for j, w := range kept {
				if i != j && v.Distance(w) <= threshold {
					neighbours = append(neighbours, j)
				}
			}
			if len(neighbours) > bestCount {
				bestIdx, bestCount, bestNeighbours = i, len(neighbours), neighbours
			}
		}
		if bestIdx < 0 || bestCount == 0 {
			return kept
		}
		drop := make(map[int]bool, len(bestNeighbours))
		for _, j := range bestNeighbours {
			drop[j] = true
		}
		next := kept[:0]
		for i, v := range kept {
			if !drop[i] {
				next = append(next, v)
			}
		}
		kept = next
	}
}
