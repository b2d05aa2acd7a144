package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/zarena/geom"
)

// Search runs best-first relaxation over m from start to goal (both in world
// coordinates) under heuristic h.
//
// Returns a nil path — and a nil error — when no path exists: planning
// failure is an expected outcome, not a fault. Errors are reserved for
// misuse (nil medium/heuristic) and Prepare failures.
//
// Procedure:
//
//  1. If the straight segment is clear, emit [start, goal] immediately.
//  2. Prepare lifts the endpoints into node space (possibly mutating the
//     medium); Close is deferred from here on.
//  3. Relax: repeatedly pop the open node with the smallest
//     tentative-distance + heuristic, finalize it, and improve its
//     neighbours. A cost decrease re-pushes the node (lazy decrease-key);
//     stale entries are skipped against the closed set.
//  4. Stop when the goal is finalized (reconstruct by predecessor walk) or
//     the frontier empties (unreachable → nil).
func Search[N comparable](m Medium[N], h Heuristic[N], start, goal geom.Position) (*Path, error) {
	if m == nil {
		return nil, ErrNilMedium
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 1) Straight-line fast path: no node work at all.
	if m.PathIsClear(start, goal) {
		return NewPath([]geom.Position{start, goal}, start, goal), nil
	}

	// 2) Lift endpoints into node space.
	s, g, err := m.Prepare(start, goal)
	if err != nil {
		return nil, err
	}
	defer m.Close(s, g)

	nodes := m.AllNodes()
	if len(nodes) == 0 {
		return nil, nil
	}

	r := &runner[N]{
		m:       m,
		h:       h,
		goal:    g,
		dist:    make(map[N]float64, len(nodes)),
		source:  make(map[N]N, len(nodes)),
		visited: make(map[N]bool, len(nodes)),
	}
	r.init(s, nodes)
	if !r.process() {
		return nil, nil
	}

	chain := r.reconstruct(g)
	points := make([]geom.Position, 0, len(chain))
	for _, n := range chain {
		points = append(points, m.PositionOf(n))
	}

	return NewPath(points, m.PositionOf(s), m.PositionOf(g)), nil
}

// runner holds the mutable state of a single search execution.
type runner[N comparable] struct {
	m       Medium[N]
	h       Heuristic[N]
	goal    N
	dist    map[N]float64 // node → best-known tentative distance
	source  map[N]N       // node → predecessor on the best path
	visited map[N]bool    // node → distance finalized
	pq      nodePQ[N]     // lazy min-heap over tentative + heuristic
}

// init seeds tentative distances (+∞ everywhere, 0 at the start node) and
// pushes the start onto the frontier.
func (r *runner[N]) init(s N, nodes []N) {
	for _, n := range nodes {
		r.dist[n] = math.Inf(1)
	}
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{node: s, cost: r.h(r.m, s, r.goal)})
}

// process runs the relaxation loop. Returns whether the goal was finalized.
func (r *runner[N]) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u := item.node
		if r.visited[u] {
			continue // stale frontier entry
		}
		r.visited[u] = true
		if u == r.goal {
			return true
		}
		r.relax(u)
	}

	return false
}

// relax improves every neighbour of the finalized node u.
func (r *runner[N]) relax(u N) {
	for _, v := range r.m.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		nd := r.dist[u] + r.m.EdgeCost(u, v)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.source[v] = u
		heap.Push(&r.pq, &nodeItem[N]{node: v, cost: nd + r.h(r.m, v, r.goal)})
	}
}

// reconstruct walks predecessors from the goal back to the start (the one
// node without a predecessor), prepending as it goes.
func (r *runner[N]) reconstruct(g N) []N {
	var chain []N
	cur := g
	for {
		chain = append([]N{cur}, chain...)
		prev, ok := r.source[cur]
		if !ok {
			break
		}
		cur = prev
	}

	return chain
}

// nodeItem is one frontier entry: a node and the priority it was pushed at.
type nodeItem[N comparable] struct {
	node N
	cost float64 // tentative distance + heuristic at push time
}

// nodePQ is a lazy-decrease-key min-heap: decreases push duplicates, pops
// skip entries whose node is already finalized.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a frontier entry. Called through heap.Push.
func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes the last entry. Called through heap.Pop.
func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
