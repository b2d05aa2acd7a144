package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/pathfind"
	"github.com/katalvlaran/zarena/planner"
	"github.com/katalvlaran/zarena/worldmap"
)

// arena builds a map whose obstacles are the given pixel rectangles
// (inclusive bounds).
func arena(t *testing.T, rects ...[4]int) *worldmap.MapData {
	t.Helper()
	g := make([][]bool, worldmap.Height)
	for y := range g {
		g[y] = make([]bool, worldmap.Width)
	}
	for _, r := range rects {
		for y := r[1]; y <= r[3] && y < worldmap.Height; y++ {
			for x := r[0]; x <= r[2] && x < worldmap.Width; x++ {
				g[y][x] = true
			}
		}
	}
	m, err := worldmap.NewFromGrid(g, worldmap.SpawnTable{
		Player:  geom.NewPosition(20, 20),
		Zombies: []geom.Position{geom.NewPosition(40, 20)},
	})
	require.NoError(t, err)

	return m
}

// singleWall is the lone vertical wall fixture: a corridor below the wall
// is the only way across.
func singleWall(t *testing.T) *worldmap.MapData {
	return arena(t, [4]int{290, 0, 310, 300})
}

// assertSegmentsClear checks every consecutive pair of path points for line
// of sight over a ratio-1 discretization (pure world-pixel raycast).
func assertSegmentsClear(t *testing.T, m *worldmap.MapData, p *pathfind.Path) {
	t.Helper()
	dm, err := grid.New(m, 1)
	require.NoError(t, err)
	pts := p.Points()
	for i := 1; i < len(pts); i++ {
		c := dm.PathIsClear(pts[i-1], pts[i], grid.WithExclusionRadius(2.25))
		assert.True(t, c.Clear, "segment %d (%v→%v) not clear", i, pts[i-1], pts[i])
	}
}

// TestGridAStar_StraightLine: an unobstructed query short-circuits to the
// exact two-point segment.
func TestGridAStar_StraightLine(t *testing.T) {
	p, err := planner.NewGridAStar(arena(t), planner.Params{Ratio: 3})
	require.NoError(t, err)

	start, goal := geom.NewPosition(10, 10), geom.NewPosition(590, 390)
	path := p.GeneratePath(start, goal)
	require.NotNil(t, path)
	assert.Equal(t, 2, path.Len())
	assert.Equal(t, start, path.First())
	assert.Equal(t, goal, path.Last())
}

// TestGridPlanners_RouteAroundWall: both grid planners find a route around
// the wall, with identical (optimal) cost.
func TestGridPlanners_RouteAroundWall(t *testing.T) {
	m := singleWall(t)
	start, goal := geom.NewPosition(100, 200), geom.NewPosition(500, 200)

	dijkstra, err := planner.NewGridDijkstra(m, planner.Params{Ratio: 3})
	require.NoError(t, err)
	astar, err := planner.NewGridAStar(m, planner.Params{Ratio: 3})
	require.NoError(t, err)

	pd := dijkstra.GeneratePath(start, goal)
	pa := astar.GeneratePath(start, goal)
	require.NotNil(t, pd)
	require.NotNil(t, pa)

	// Dijkstra is optimal over the 8-connected graph; an admissible A* must
	// match its cost exactly.
	assert.InDelta(t, pd.Length(), pa.Length(), 1e-6)
	// Any route is at least the straight line and must actually detour.
	straight := start.Distance(goal)
	assert.Greater(t, pd.Length(), straight)
}

// TestVGAStar_SingleWall: the visibility-graph route hugs the wall tip with
// 3 or 4 points, all segments mutually visible, within 1.2× the corner
// envelope.
func TestVGAStar_SingleWall(t *testing.T) {
	m := singleWall(t)
	start, goal := geom.NewPosition(100, 200), geom.NewPosition(500, 200)

	p, err := planner.NewVGAStar(m, planner.Params{Ratio: 3, CleanThreshold: 10})
	require.NoError(t, err)

	path := p.GeneratePath(start, goal)
	require.NotNil(t, path)
	assert.GreaterOrEqual(t, path.Len(), 3)
	assert.LessOrEqual(t, path.Len(), 4)
	assert.True(t, path.First().Equal(start))
	assert.True(t, path.Last().Equal(goal))
	assertSegmentsClear(t, m, path)

	// Envelope: around the inflated wall tip.
	envelope := start.Distance(geom.NewPosition(284, 306)) +
		geom.NewPosition(284, 306).Distance(geom.NewPosition(316, 306)) +
		geom.NewPosition(316, 306).Distance(goal)
	assert.LessOrEqual(t, path.Length(), 1.2*envelope)
}

// TestVGAStar_RepeatedQueries: transient endpoints must not leak between
// queries — fifty queries in a row return equivalent paths.
func TestVGAStar_RepeatedQueries(t *testing.T) {
	m := singleWall(t)
	p, err := planner.NewVGAStar(m, planner.Params{Ratio: 3, CleanThreshold: 10})
	require.NoError(t, err)

	start, goal := geom.NewPosition(100, 200), geom.NewPosition(500, 200)
	first := p.GeneratePath(start, goal)
	require.NotNil(t, first)
	for i := 0; i < 50; i++ {
		again := p.GeneratePath(start, goal)
		require.NotNil(t, again)
		assert.Equal(t, first.Points(), again.Points(), "query %d diverged", i)
	}
}

// TestPlanners_Unreachable: a full-width wall splits the map; every planner
// kind reports the failure as a nil path.
func TestPlanners_Unreachable(t *testing.T) {
	m := arena(t, [4]int{0, 195, 599, 205})
	start, goal := geom.NewPosition(100, 100), geom.NewPosition(500, 300)

	gd, err := planner.NewGridDijkstra(m, planner.Params{Ratio: 3})
	require.NoError(t, err)
	assert.Nil(t, gd.GeneratePath(start, goal))

	va, err := planner.NewVGAStar(m, planner.Params{Ratio: 3, CleanThreshold: 10})
	require.NoError(t, err)
	assert.Nil(t, va.GeneratePath(start, goal))

	rrt, err := planner.NewRRT(m, planner.Params{Timeout: 150 * time.Millisecond, Seed: 11})
	require.NoError(t, err)
	assert.Nil(t, rrt.GeneratePath(start, goal))
}

// TestSalvage_AfterWallRoute: planner-level salvage rewrites only the final
// waypoint when both endpoints drifted under the threshold.
func TestSalvage_AfterWallRoute(t *testing.T) {
	m := singleWall(t)
	p, err := planner.NewVGAStar(m, planner.Params{Ratio: 3, CleanThreshold: 10, SalvageThreshold: 5.0})
	require.NoError(t, err)

	old := p.GeneratePath(geom.NewPosition(100, 200), geom.NewPosition(500, 200))
	require.NotNil(t, old)
	oldPts := old.Points()

	got, ok := p.SalvagePath(old, geom.NewPosition(101, 201), geom.NewPosition(499, 199))
	require.True(t, ok)
	pts := got.Points()
	require.Equal(t, len(oldPts), len(pts))
	assert.Equal(t, geom.NewPosition(499, 199), pts[len(pts)-1])
	for i := 0; i < len(pts)-1; i++ {
		assert.Equal(t, oldPts[i], pts[i], "point %d must be unchanged", i)
	}

	// Too much drift refuses.
	_, ok = p.SalvagePath(old, geom.NewPosition(120, 200), geom.NewPosition(500, 200))
	assert.False(t, ok)
}

// TestSalvage_TwoPointGate: grid/VG planners refuse 2-point paths; RRT
// accepts them when the straight segment is blocked.
func TestSalvage_TwoPointGate(t *testing.T) {
	m := singleWall(t)
	two := pathfind.NewPath(
		[]geom.Position{geom.NewPosition(100, 200), geom.NewPosition(500, 200)},
		geom.NewPosition(100, 200), geom.NewPosition(500, 200),
	)

	vg, err := planner.NewVGAStar(m, planner.Params{Ratio: 3})
	require.NoError(t, err)
	_, ok := vg.SalvagePath(two, geom.NewPosition(100, 200), geom.NewPosition(500, 200))
	assert.False(t, ok, "grid/VG salvage requires at least 3 points")

	rrt, err := planner.NewRRT(m, planner.Params{Seed: 5})
	require.NoError(t, err)
	_, ok = rrt.SalvagePath(two, geom.NewPosition(100, 200), geom.NewPosition(500, 200))
	assert.True(t, ok, "RRT salvage accepts 2 points across a blocked segment")

	// With a clear segment RRT refuses: regeneration is trivial.
	blank, err := planner.NewRRT(arena(t), planner.Params{Seed: 5})
	require.NoError(t, err)
	_, ok = blank.SalvagePath(two, geom.NewPosition(100, 200), geom.NewPosition(500, 200))
	assert.False(t, ok)
}

// TestRRT_Trivial: a clear segment is answered with the exact two points.
func TestRRT_Trivial(t *testing.T) {
	p, err := planner.NewRRT(arena(t), planner.Params{Seed: 3})
	require.NoError(t, err)
	start, goal := geom.NewPosition(50, 50), geom.NewPosition(550, 350)
	path := p.GeneratePath(start, goal)
	require.NotNil(t, path)
	assert.Equal(t, 2, path.Len())
	assert.Equal(t, start, path.First())
	assert.Equal(t, goal, path.Last())
}

// TestRRT_BestEffortCorridor: best-effort RRT threads a narrow corridor
// between two wall slabs and every emitted segment is traversable.
func TestRRT_BestEffortCorridor(t *testing.T) {
	m := arena(t,
		[4]int{0, 150, 280, 250},
		[4]int{320, 150, 599, 250},
	)
	// A roomy timeout keeps slow CI machines out of the assertion; a warm
	// machine crosses in well under the default budget.
	p, err := planner.NewRRT(m, planner.Params{BestEffort: true, Seed: 42, Timeout: 10 * time.Second})
	require.NoError(t, err)

	start, goal := geom.NewPosition(100, 100), geom.NewPosition(500, 300)
	path := p.GeneratePath(start, goal)
	require.NotNil(t, path, "best-effort RRT should cross the corridor within the timeout")
	assert.True(t, path.First().Equal(start))
	assert.True(t, path.Last().Equal(goal))
	assertSegmentsClear(t, m, path)
}

func TestRegistry(t *testing.T) {
	m := arena(t)
	reg, err := planner.NewRegistry(m)
	require.NoError(t, err)
	assert.Nil(t, reg.Current(), "fresh registry has no planner")

	assert.False(t, reg.Renew(planner.Kind("bogus"), planner.Params{}))
	assert.Nil(t, reg.Current(), "failed renew must not install anything")

	require.True(t, reg.Renew(planner.KindGridAStar, planner.Params{Ratio: 3}))
	first := reg.Current()
	require.NotNil(t, first)
	assert.Equal(t, "grid-astar", first.Name())

	require.True(t, reg.Renew(planner.KindVGAStar, planner.Params{Ratio: 3}))
	second := reg.Current()
	require.NotNil(t, second)
	assert.Equal(t, "vg-astar", second.Name())

	// The handle read before the swap keeps working.
	path := first.GeneratePath(geom.NewPosition(10, 10), geom.NewPosition(200, 200))
	assert.NotNil(t, path)
}

func TestNewPlanners_NilMap(t *testing.T) {
	_, err := planner.NewGridAStar(nil, planner.Params{})
	assert.ErrorIs(t, err, planner.ErrNilMap)
	_, err = planner.NewVGDijkstra(nil, planner.Params{})
	assert.ErrorIs(t, err, planner.ErrNilMap)
	_, err = planner.NewRRT(nil, planner.Params{})
	assert.ErrorIs(t, err, planner.ErrNilMap)
	_, err = planner.NewRegistry(nil)
	assert.ErrorIs(t, err, planner.ErrNilMap)
}
