package planner

import (
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/pathfind"
	"github.com/katalvlaran/zarena/visgraph"
	"github.com/katalvlaran/zarena/worldmap"
)

// GridPlanner runs the generic engine over the 8-connected occupancy grid.
type GridPlanner struct {
	name             string
	medium           *gridMedium
	heuristic        pathfind.Heuristic[grid.Cell]
	salvageThreshold float64
}

// NewGridDijkstra builds the grid planner with the zero heuristic.
func NewGridDijkstra(m *worldmap.MapData, params Params) (*GridPlanner, error) {
	return newGridPlanner(m, params, string(KindGridDijkstra), pathfind.Zero[grid.Cell])
}

// NewGridAStar builds the grid planner with the Euclidean heuristic.
func NewGridAStar(m *worldmap.MapData, params Params) (*GridPlanner, error) {
	return newGridPlanner(m, params, string(KindGridAStar), pathfind.Euclidean[grid.Cell])
}

func newGridPlanner(m *worldmap.MapData, params Params, name string, h pathfind.Heuristic[grid.Cell]) (*GridPlanner, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	params = params.withDefaults()
	dm, err := grid.New(m, params.Ratio)
	if err != nil {
		return nil, err
	}

	return &GridPlanner{
		name:             name,
		medium:           &gridMedium{dm: dm},
		heuristic:        h,
		salvageThreshold: params.SalvageThreshold,
	}, nil
}

// Name implements Planner.
func (p *GridPlanner) Name() string { return p.name }

// GeneratePath implements Planner. Planning failure is a nil path.
func (p *GridPlanner) GeneratePath(start, goal geom.Position) *pathfind.Path {
	path, err := pathfind.Search[grid.Cell](p.medium, p.heuristic, start, goal)
	if err != nil {
		return nil
	}

	return path
}

// SalvagePath implements Planner: grid paths need at least 3 points.
func (p *GridPlanner) SalvagePath(old *pathfind.Path, start, goal geom.Position) (*pathfind.Path, bool) {
	return pathfind.Salvage(old, start, goal, p.salvageThreshold, gridSalvageMinPoints)
}

// VGPlanner runs the generic engine over a visibility graph built once at
// construction.
type VGPlanner struct {
	name             string
	medium           *vgMedium
	heuristic        pathfind.Heuristic[visgraph.NodeID]
	salvageThreshold float64
}

// NewVGDijkstra builds the visibility-graph planner with the zero heuristic.
func NewVGDijkstra(m *worldmap.MapData, params Params) (*VGPlanner, error) {
	return newVGPlanner(m, params, string(KindVGDijkstra), pathfind.Zero[visgraph.NodeID])
}

// NewVGAStar builds the visibility-graph planner with the Euclidean
// heuristic.
func NewVGAStar(m *worldmap.MapData, params Params) (*VGPlanner, error) {
	return newVGPlanner(m, params, string(KindVGAStar), pathfind.Euclidean[visgraph.NodeID])
}

func newVGPlanner(m *worldmap.MapData, params Params, name string, h pathfind.Heuristic[visgraph.NodeID]) (*VGPlanner, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	params = params.withDefaults()
	dm, err := grid.New(m, params.Ratio)
	if err != nil {
		return nil, err
	}
	vg, err := visgraph.Build(dm, visgraph.WithCleanThreshold(params.CleanThreshold))
	if err != nil {
		return nil, err
	}

	return &VGPlanner{
		name:             name,
		medium:           &vgMedium{g: vg, dm: dm, ratio: float64(params.Ratio)},
		heuristic:        h,
		salvageThreshold: params.SalvageThreshold,
	}, nil
}

// Name implements Planner.
func (p *VGPlanner) Name() string { return p.name }

// GeneratePath implements Planner. Planning failure is a nil path.
func (p *VGPlanner) GeneratePath(start, goal geom.Position) *pathfind.Path {
	path, err := pathfind.Search[visgraph.NodeID](p.medium, p.heuristic, start, goal)
	if err != nil {
		return nil
	}

	return path
}

// SalvagePath implements Planner: visibility-graph paths need at least
// 3 points.
func (p *VGPlanner) SalvagePath(old *pathfind.Path, start, goal geom.Position) (*pathfind.Path, bool) {
	return pathfind.Salvage(old, start, goal, p.salvageThreshold, gridSalvageMinPoints)
}
