// Package planner defines the planner interface, construction parameters,
// and sentinel errors for the planner subpackage of
// github.com/katalvlaran/zarena.
package planner

import (
	"errors"
	"time"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/pathfind"
)

// Sentinel errors for planner construction and registry lookups.
var (
	// ErrNilMap indicates a nil *worldmap.MapData was passed to a
	// constructor.
	ErrNilMap = errors.New("planner: world map is nil")
	// ErrUnknownKind indicates the registry has no constructor for the
	// requested planner kind.
	ErrUnknownKind = errors.New("planner: unknown planner kind")
)

// Defaults shared by the concrete planners.
const (
	// DefaultRatio is the discretization ratio for grid and VG planners.
	DefaultRatio = 3
	// DefaultSalvageThreshold is the endpoint-drift bound under which an
	// existing path is reused instead of replanned.
	DefaultSalvageThreshold = 5.0
	// DefaultRRTTimeout bounds one RRT growth attempt.
	DefaultRRTTimeout = 1500 * time.Millisecond
	// rrtInterp is the RRT extension step length in world units.
	rrtInterp = 2.5
	// gridSalvageMinPoints is the salvage length gate for grid/VG paths.
	gridSalvageMinPoints = 3
	// rrtSalvageMinPoints is the (looser) salvage length gate for RRT.
	rrtSalvageMinPoints = 2
)

// Planner computes zombie pursuit paths. Implementations are used from a
// single goroutine at a time (the planner tick); they are not required to
// be concurrency-safe.
type Planner interface {
	// Name identifies the planner in logs and configuration.
	Name() string

	// GeneratePath plans from start to goal in world coordinates.
	// A nil result means planning failed; callers tolerate it.
	GeneratePath(start, goal geom.Position) *pathfind.Path

	// SalvagePath attempts to reuse old for slightly moved endpoints.
	// On refusal the caller falls back to GeneratePath.
	SalvagePath(old *pathfind.Path, start, goal geom.Position) (*pathfind.Path, bool)
}

// Kind names a constructible planner family.
type Kind string

// The registered planner kinds.
const (
	KindGridDijkstra Kind = "grid-dijkstra"
	KindGridAStar    Kind = "grid-astar"
	KindVGDijkstra   Kind = "vg-dijkstra"
	KindVGAStar      Kind = "vg-astar"
	KindRRT          Kind = "rrt"
)

// Params bundles every constructor argument the registry can forward.
// Zero values select the documented defaults.
type Params struct {
	// Ratio is the discretization ratio for grid and VG planners.
	Ratio int
	// CleanThreshold is the VG vertex deduplication radius
	// (discretized units).
	CleanThreshold float64
	// SalvageThreshold is the endpoint-drift bound for path reuse.
	SalvageThreshold float64
	// BestEffort lets RRT keep partial extensions toward blocked samples.
	BestEffort bool
	// Timeout bounds one RRT growth attempt.
	Timeout time.Duration
	// Seed seeds the RRT sampler. Zero means seed from entropy.
	Seed int64
}

// withDefaults fills unset fields.
func (p Params) withDefaults() Params {
	if p.Ratio <= 0 {
		p.Ratio = DefaultRatio
	}
	if p.CleanThreshold <= 0 {
		p.CleanThreshold = 10
	}
	if p.SalvageThreshold <= 0 {
		p.SalvageThreshold = DefaultSalvageThreshold
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultRRTTimeout
	}

	return p
}
