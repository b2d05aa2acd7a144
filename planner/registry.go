package planner

import (
	"go.uber.org/atomic"

	"github.com/katalvlaran/zarena/worldmap"
)

// handle wraps the current planner so the registry can swap it atomically.
type handle struct {
	p Planner
}

// Registry is the process-wide holder of the zombie planner. Renew builds a
// replacement and swaps it in; readers take the handle exactly once per
// computation, so a swap mid-tick never mixes two planners within one pass.
//
// The registry is safe for concurrent use.
type Registry struct {
	m       *worldmap.MapData
	current atomic.Pointer[handle]
}

// NewRegistry creates a registry bound to one world map, with no planner
// installed yet.
func NewRegistry(m *worldmap.MapData) (*Registry, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	return &Registry{m: m}, nil
}

// Renew constructs a fresh planner of the given kind and atomically
// replaces the current handle. An unknown kind, or a constructor failure,
// leaves the current planner untouched and returns false.
func (r *Registry) Renew(kind Kind, params Params) bool {
	p, err := r.construct(kind, params)
	if err != nil {
		return false
	}
	r.current.Store(&handle{p: p})

	return true
}

// construct dispatches the kind to its constructor.
func (r *Registry) construct(kind Kind, params Params) (Planner, error) {
	switch kind {
	case KindGridDijkstra:
		return NewGridDijkstra(r.m, params)
	case KindGridAStar:
		return NewGridAStar(r.m, params)
	case KindVGDijkstra:
		return NewVGDijkstra(r.m, params)
	case KindVGAStar:
		return NewVGAStar(r.m, params)
	case KindRRT:
		return NewRRT(r.m, params)
	default:
		return nil, ErrUnknownKind
	}
}

// Current returns the installed planner, or nil if Renew has never
// succeeded. Callers must read it once and use that value for the whole
// computation.
func (r *Registry) Current() Planner {
	h := r.current.Load()
	if h == nil {
		return nil
	}

	return h.p
}
