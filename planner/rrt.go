package planner

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/pathfind"
	"github.com/katalvlaran/zarena/worldmap"
)

// RRTPlanner grows a rapidly-exploring random tree over the inflated raster
// at ratio 1. It offers no optimality guarantee; a shortcut pass prunes the
// worst of the tree's wandering before the polyline is emitted.
type RRTPlanner struct {
	dm               *grid.DiscretizedMap
	rng              *rand.Rand
	interp           float64
	timeout          time.Duration
	bestEffort       bool
	salvageThreshold float64
}

// rrtNode is one tree vertex: a world position and its parent index
// (-1 for the root).
type rrtNode struct {
	pos    geom.Position
	parent int
}

// NewRRT builds the RRT planner. With BestEffort set, blocked extensions
// keep their furthest traversable prefix instead of being dropped, which
// lets the tree squeeze through narrow corridors at the cost of optimality.
func NewRRT(m *worldmap.MapData, params Params) (*RRTPlanner, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	params = params.withDefaults()
	// Ratio 1: discretized coordinates coincide with world pixels.
	dm, err := grid.New(m, 1)
	if err != nil {
		return nil, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RRTPlanner{
		dm:               dm,
		rng:              rand.New(rand.NewSource(seed)),
		interp:           rrtInterp,
		timeout:          params.Timeout,
		bestEffort:       params.BestEffort,
		salvageThreshold: params.SalvageThreshold,
	}, nil
}

// Name implements Planner.
func (p *RRTPlanner) Name() string { return string(KindRRT) }

// GeneratePath implements Planner: grow until the goal attaches or the
// timeout expires, then run the shortcut pass. Timeout is a nil path.
func (p *RRTPlanner) GeneratePath(start, goal geom.Position) *pathfind.Path {
	if p.dm.PathIsClear(start, goal).Clear {
		return pathfind.NewPath([]geom.Position{start, goal}, start, goal)
	}

	tree := []rrtNode{{pos: start, parent: -1}}
	deadline := time.Now().Add(p.timeout)
	goalIdx := -1
	for goalIdx < 0 {
		if time.Now().After(deadline) {
			return nil
		}
		sample := geom.NewPosition(
			p.rng.Float64()*worldmap.Width,
			p.rng.Float64()*worldmap.Height,
		)
		goalIdx = p.extend(&tree, sample, goal)
	}

	return p.emit(tree, goalIdx, start, goal)
}

// extend steers the tree one step toward sample and, on success, tries to
// attach the goal to the new node. Returns the goal's node index once
// attached, -1 otherwise.
func (p *RRTPlanner) extend(tree *[]rrtNode, sample, goal geom.Position) int {
	nearest := p.nearest(*tree, sample)
	from := (*tree)[nearest].pos

	// Steer: cap the extension at the interpolation distance.
	target := sample
	if d := from.Distance(sample); d >= p.interp {
		t := p.interp / d
		target = geom.NewPosition(from.X+(sample.X-from.X)*t, from.Y+(sample.Y-from.Y)*t)
	}

	c := p.dm.PathIsClear(from, target)
	if !c.Clear && !(p.bestEffort && c.Valid) {
		return -1
	}
	added := c.Furthest
	if added.Equal(from) {
		// A degenerate extension would only duplicate the nearest node.
		return -1
	}
	*tree = append(*tree, rrtNode{pos: added, parent: nearest})
	addedIdx := len(*tree) - 1

	if p.dm.PathIsClear(added, goal).Clear {
		*tree = append(*tree, rrtNode{pos: goal, parent: addedIdx})

		return len(*tree) - 1
	}

	return -1
}

// nearest scans the tree for the node closest to q.
func (p *RRTPlanner) nearest(tree []rrtNode, q geom.Position) int {
	best, bestDist := 0, tree[0].pos.Distance(q)
	for i := 1; i < len(tree); i++ {
		if d := tree[i].pos.Distance(q); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// emit reconstructs root→goal and runs the shortcut pass: walking backwards
// from the goal, each tail reconnects to the EARLIEST ancestor it can see,
// cutting out everything in between.
func (p *RRTPlanner) emit(tree []rrtNode, goalIdx int, start, goal geom.Position) *pathfind.Path {
	var chain []geom.Position
	for i := goalIdx; i >= 0; i = tree[i].parent {
		chain = append([]geom.Position{tree[i].pos}, chain...)
	}

	shortcut := []geom.Position{chain[len(chain)-1]}
	i := len(chain) - 1
	for i > 0 {
		next := i - 1
		for j := 0; j < i; j++ {
			if p.dm.PathIsClear(chain[j], chain[i]).Clear {
				next = j
				break
			}
		}
		shortcut = append([]geom.Position{chain[next]}, shortcut...)
		i = next
	}

	return pathfind.NewPath(shortcut, start, goal)
}

// SalvagePath implements Planner. RRT accepts 2-point paths but refuses
// when the straight segment is clear — regenerating the trivial path is
// cheaper and better than reusing a stale tree walk.
func (p *RRTPlanner) SalvagePath(old *pathfind.Path, start, goal geom.Position) (*pathfind.Path, bool) {
	if p.dm.PathIsClear(start, goal).Clear {
		return nil, false
	}

	return pathfind.Salvage(old, start, goal, p.salvageThreshold, rrtSalvageMinPoints)
}
