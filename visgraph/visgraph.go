package visgraph

import (
	"sort"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
)

// Graph is a visibility graph over one discretized map. Edges are undirected
// and stored as symmetric directed pairs. The static node set is built once;
// AddEndpoint/RemoveEndpoint mutate the graph transiently per query, so a
// Graph must not be shared between concurrent queries.
type Graph struct {
	dm        *grid.DiscretizedMap
	exclusion float64
	nodes     map[NodeID]Node
	adj       map[NodeID]map[NodeID]float64
	nextID    NodeID
}

// Build constructs the visibility graph for dm: vertex detection, the
// cleanliness pass, then a raycast per vertex pair.
func Build(dm *grid.DiscretizedMap, opts ...BuildOption) (*Graph, error) {
	if dm == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		dm:        dm,
		exclusion: edgeExclusionFactor * float64(dm.Ratio()),
		nodes:     make(map[NodeID]Node),
		adj:       make(map[NodeID]map[NodeID]float64),
	}
	for _, pos := range deduplicate(detectVertices(dm), cfg.CleanThreshold) {
		id := g.nextID
		g.nextID++
		g.nodes[id] = Node{ID: id, Pos: pos}
		g.adj[id] = make(map[NodeID]float64)
	}

	// Connect every mutually visible pair.
	ids := g.sortedIDs()
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			g.tryConnect(u, v)
		}
	}

	return g, nil
}

// tryConnect inserts the symmetric edge u↔v when the segment between the
// two node positions is clear under the edge exclusion radius.
func (g *Graph) tryConnect(u, v NodeID) {
	pu, pv := g.nodes[u].Pos, g.nodes[v].Pos
	c := g.dm.PathIsClear(pu, pv, grid.WithExclusionRadius(g.exclusion))
	if !c.Clear {
		return
	}
	w := pu.Distance(pv)
	g.adj[u][v] = w
	g.adj[v][u] = w
}

// AddEndpoint inserts a transient node at pos (discretized coordinates) and
// wires it by line of sight to every current node. The caller must remove
// the node again with RemoveEndpoint once the query is done.
func (g *Graph) AddEndpoint(pos geom.Position) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes[id] = Node{ID: id, Pos: pos}
	g.adj[id] = make(map[NodeID]float64)
	for _, other := range g.sortedIDs() {
		if other == id {
			continue
		}
		g.tryConnect(id, other)
	}

	return id
}

// RemoveEndpoint deletes a node and both directions of all its edges.
// Returns ErrUnknownNode if the node is not in the graph.
func (g *Graph) RemoveEndpoint(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrUnknownNode
	}
	for other := range g.adj[id] {
		delete(g.adj[other], id)
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Nodes returns all nodes ordered by ID.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, id := range g.sortedIDs() {
		out = append(out, g.nodes[id])
	}

	return out
}

// Neighbors returns the outgoing edges of id ordered by target ID.
func (g *Graph) Neighbors(id NodeID) []Edge {
	adj := g.adj[id]
	out := make([]Edge, 0, len(adj))
	for to, w := range adj {
		out = append(out, Edge{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Weight returns the weight of edge u→v and whether it exists.
func (g *Graph) Weight(u, v NodeID) (float64, bool) {
	w, ok := g.adj[u][v]

	return w, ok
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges (symmetric pairs counted
// once).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, adj := range g.adj {
		total += len(adj)
	}

	return total / 2
}

// sortedIDs returns the node IDs in ascending order for deterministic
// iteration.
func (g *Graph) sortedIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
