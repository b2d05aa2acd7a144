// Package grid defines the cell type, raycast options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/zarena.
package grid

import (
	"errors"

	"github.com/katalvlaran/zarena/geom"
)

// Sentinel errors for discretized-map construction.
var (
	// ErrNilMap indicates a nil *worldmap.MapData was passed to New.
	ErrNilMap = errors.New("grid: source map is nil")
	// ErrBadRatio indicates a discretization ratio below 1.
	ErrBadRatio = errors.New("grid: ratio must be at least 1")
)

// Cell is an integer lattice point in discretized coordinates.
// Cell is comparable and is used directly as a map key by the search engine.
type Cell struct {
	X, Y int
}

// Key returns the stable dense index of the cell in a grid of the given
// width: y·W + x. Useful for slice-backed bookkeeping.
func (c Cell) Key(width int) int {
	return c.Y*width + c.X
}

// Clearance is the result of a raycast: whether the whole segment was clear,
// and the furthest valid point reached before the first blocked sample.
// Valid is false when not even the first sample was traversable.
type Clearance struct {
	Clear    bool          // The entire segment is traversable.
	Furthest geom.Position // Last traversable sample (meaningful iff Valid).
	Valid    bool          // At least one sample was traversable.
}

// RaycastOptions tunes PathIsClear.
//
// ExclusionRadius — samples within this distance of either endpoint are
// skipped (not tested). Zero disables the exclusion.
// Step — interpolation step length; zero selects the default 0.5·D.
type RaycastOptions struct {
	ExclusionRadius float64
	Step            float64
}

// RaycastOption mutates RaycastOptions.
type RaycastOption func(*RaycastOptions)

// WithExclusionRadius skips samples within r of either endpoint.
// Panics if r is negative.
func WithExclusionRadius(r float64) RaycastOption {
	if r < 0 {
		panic("grid: exclusion radius must be non-negative")
	}

	return func(o *RaycastOptions) {
		o.ExclusionRadius = r
	}
}

// WithStep overrides the interpolation step length.
// Panics if step is not positive.
func WithStep(step float64) RaycastOption {
	if step <= 0 {
		panic("grid: step must be positive")
	}

	return func(o *RaycastOptions) {
		o.Step = step
	}
}
