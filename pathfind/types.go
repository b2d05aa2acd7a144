// Package pathfind defines the traversal-medium contract, heuristics, and
// sentinel errors for the pathfind subpackage of github.com/katalvlaran/zarena.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/zarena/geom"
)

// Sentinel errors for engine misuse. Note that "no path exists" is NOT an
// error: Search returns a nil *Path for it.
var (
	// ErrNilMedium indicates a nil Medium was passed to Search.
	ErrNilMedium = errors.New("pathfind: medium is nil")
	// ErrNilHeuristic indicates a nil Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("pathfind: heuristic is nil")
)

// Medium is a traversal medium: the node space one search runs over.
// N must be comparable; nodes are used directly as map keys.
//
// Lifecycle per query: Prepare lifts the world endpoints into node space and
// may mutate the medium (a visibility graph inserts transient endpoint
// nodes); Close undoes whatever Prepare did. Search guarantees Close is
// called exactly once for every successful Prepare.
type Medium[N comparable] interface {
	// PathIsClear reports whether the straight world-coordinate segment
	// start→goal is traversable in this representation.
	PathIsClear(start, goal geom.Position) bool

	// PositionOf projects a node to world coordinates.
	PositionOf(n N) geom.Position

	// AllNodes returns the full node collection, endpoints included once
	// Prepare has run. An empty collection makes the search fail.
	AllNodes() []N

	// Prepare lifts world endpoints into node space.
	Prepare(start, goal geom.Position) (s, g N, err error)

	// Neighbors returns the nodes adjacent to n.
	Neighbors(n N) []N

	// EdgeCost returns the non-negative cost of traversing u→v.
	EdgeCost(u, v N) float64

	// Close undoes Prepare.
	Close(s, g N)
}

// Heuristic estimates the remaining cost from n to goal. It must never
// overestimate for A* to stay optimal.
type Heuristic[N comparable] func(m Medium[N], n, goal N) float64

// Zero is the null heuristic: best-first search degenerates to Dijkstra.
func Zero[N comparable](Medium[N], N, N) float64 {
	return 0
}

// Euclidean estimates by straight-line world distance, the admissible
// choice for A* over both media.
func Euclidean[N comparable](m Medium[N], n, goal N) float64 {
	return m.PositionOf(n).Distance(m.PositionOf(goal))
}
