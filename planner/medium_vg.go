package planner

import (
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/pathfind"
	"github.com/katalvlaran/zarena/visgraph"
)

// vgMedium adapts a visibility graph to the search engine. The graph lives
// in discretized coordinates; the medium scales world endpoints down in
// Prepare and node positions back up in PositionOf. Prepare inserts the
// transient start/goal nodes, Close removes them again, so one medium
// serves one query at a time.
type vgMedium struct {
	g     *visgraph.Graph
	dm    *grid.DiscretizedMap
	ratio float64
}

var _ pathfind.Medium[visgraph.NodeID] = (*vgMedium)(nil)

func (m *vgMedium) PathIsClear(start, goal geom.Position) bool {
	return m.dm.PathIsClearInOriginal(start, goal).Clear
}

func (m *vgMedium) PositionOf(id visgraph.NodeID) geom.Position {
	n, ok := m.g.Node(id)
	if !ok {
		return geom.Position{}
	}

	return n.Pos.Scale(m.ratio)
}

func (m *vgMedium) AllNodes() []visgraph.NodeID {
	nodes := m.g.Nodes()
	out := make([]visgraph.NodeID, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}

	return out
}

func (m *vgMedium) Prepare(start, goal geom.Position) (visgraph.NodeID, visgraph.NodeID, error) {
	s := m.g.AddEndpoint(start.Scale(1 / m.ratio))
	g := m.g.AddEndpoint(goal.Scale(1 / m.ratio))

	return s, g, nil
}

func (m *vgMedium) Neighbors(id visgraph.NodeID) []visgraph.NodeID {
	edges := m.g.Neighbors(id)
	out := make([]visgraph.NodeID, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}

	return out
}

// EdgeCost scales the stored discretized weight back to world units so the
// costs stay comparable with the Euclidean heuristic.
func (m *vgMedium) EdgeCost(u, v visgraph.NodeID) float64 {
	w, ok := m.g.Weight(u, v)
	if !ok {
		return 0
	}

	return w * m.ratio
}

func (m *vgMedium) Close(s, g visgraph.NodeID) {
	// Remove in reverse insertion order; failures mean the endpoint was
	// already gone, which is harmless here.
	_ = m.g.RemoveEndpoint(g)
	_ = m.g.RemoveEndpoint(s)
}
