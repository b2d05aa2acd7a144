// Package visgraph defines node types, build options, and sentinel errors
// for the visgraph subpackage of github.com/katalvlaran/zarena.
package visgraph

import (
	"errors"

	"github.com/katalvlaran/zarena/geom"
)

// Sentinel errors for visibility-graph operations.
var (
	// ErrNilGrid indicates a nil *grid.DiscretizedMap was passed to Build.
	ErrNilGrid = errors.New("visgraph: discretized map is nil")
	// ErrUnknownNode indicates an operation referenced a node that is not
	// (or no longer) part of the graph.
	ErrUnknownNode = errors.New("visgraph: unknown node id")
)

// DefaultCleanThreshold is the vertex deduplication radius in discretized
// units used when no option overrides it.
const DefaultCleanThreshold = 10.0

// edgeExclusionFactor scales the discretization ratio into the raycast
// exclusion radius used for every edge test.
const edgeExclusionFactor = 0.75

// NodeID identifies a node within one graph. IDs are never reused.
type NodeID int

// Node is a visibility-graph node. Pos is in discretized coordinates;
// diagonal-run midpoints make half-cell positions possible.
type Node struct {
	ID  NodeID
	Pos geom.Position
}

// Edge is one directed half of a stored (always symmetric) edge.
type Edge struct {
	To     NodeID
	Weight float64
}

// BuildOptions tunes graph construction.
//
// CleanThreshold — vertices within this radius of a denser vertex are
// dropped during deduplication. Must be positive.
type BuildOptions struct {
	CleanThreshold float64
}

// BuildOption mutates BuildOptions.
type BuildOption func(*BuildOptions)

// WithCleanThreshold overrides the deduplication radius.
// Panics if t is not positive.
func WithCleanThreshold(t float64) BuildOption {
	if t <= 0 {
		panic("visgraph: clean threshold must be positive")
	}

	return func(o *BuildOptions) {
		o.CleanThreshold = t
	}
}

// DefaultBuildOptions returns the construction defaults.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{CleanThreshold: DefaultCleanThreshold}
}
