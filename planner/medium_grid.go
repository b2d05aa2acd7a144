package planner

import (
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/pathfind"
)

// kingMoves are the 8 neighbour offsets of a grid cell.
var kingMoves = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// gridMedium adapts a DiscretizedMap to the search engine: nodes are the
// grid cells, adjacency is the 8 king-moves into open cells, costs are world-space Euclidean
// distances between cell positions. Prepare is a pure coordinate mapping,
// so the medium is stateless across queries.
type gridMedium struct {
	dm *grid.DiscretizedMap
}

var _ pathfind.Medium[grid.Cell] = (*gridMedium)(nil)

func (m *gridMedium) PathIsClear(start, goal geom.Position) bool {
	return m.dm.PathIsClearInOriginal(start, goal).Clear
}

func (m *gridMedium) PositionOf(c grid.Cell) geom.Position {
	return m.dm.WorldOf(c)
}

// AllNodes enumerates every cell of the grid, open or not; closed cells are
// unreachable because Neighbors never yields them.
func (m *gridMedium) AllNodes() []grid.Cell {
	out := make([]grid.Cell, 0, m.dm.Width()*m.dm.Height())
	for cy := 0; cy < m.dm.Height(); cy++ {
		for cx := 0; cx < m.dm.Width(); cx++ {
			out = append(out, grid.Cell{X: cx, Y: cy})
		}
	}

	return out
}

func (m *gridMedium) Prepare(start, goal geom.Position) (grid.Cell, grid.Cell, error) {
	return m.dm.CellOf(start), m.dm.CellOf(goal), nil
}

func (m *gridMedium) Neighbors(c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, 8)
	for _, d := range kingMoves {
		nx, ny := c.X+d[0], c.Y+d[1]
		if m.dm.OpenAt(nx, ny) {
			out = append(out, grid.Cell{X: nx, Y: ny})
		}
	}

	return out
}

func (m *gridMedium) EdgeCost(u, v grid.Cell) float64 {
	return m.dm.WorldOf(u).Distance(m.dm.WorldOf(v))
}

func (m *gridMedium) Close(_, _ grid.Cell) {}
