package pathfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zarena/geom"
)

func waypoints() []geom.Position {
	return []geom.Position{
		geom.NewPosition(0, 0),
		geom.NewPosition(10, 0),
		geom.NewPosition(10, 10),
	}
}

func TestPath_Stream(t *testing.T) {
	p := NewPath(waypoints(), waypoints()[0], waypoints()[2])

	next, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, geom.NewPosition(0, 0), next)

	// Arrival within 2 world units, the simulation's consumption radius.
	assert.True(t, p.AtNextPosition(geom.NewPosition(1, 1), 2))
	assert.False(t, p.AtNextPosition(geom.NewPosition(3, 0), 2))

	p.ConsumeNext()
	next, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, geom.NewPosition(10, 0), next)

	p.ConsumeNext()
	p.ConsumeNext()
	_, ok = p.Next()
	assert.False(t, ok, "stream must be exhausted")
	assert.False(t, p.AtNextPosition(geom.NewPosition(10, 10), 2))
	p.ConsumeNext() // no-op past the end
	assert.Equal(t, 3, p.Len())
}

func TestPath_NextMovement(t *testing.T) {
	p := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	p.ConsumeNext() // current waypoint is now (10, 0)

	v := p.NextMovement(geom.NewPosition(0, 0), 65)
	assert.InDelta(t, 65, v.Magnitude(), 1e-9)
	assert.InDelta(t, 0, v.Heading(), 1e-9, "due east toward (10,0)")

	// Standing on the waypoint: no movement.
	assert.True(t, p.NextMovement(geom.NewPosition(10, 0), 65).IsZero())

	// Exhausted: no movement.
	p.ConsumeNext()
	p.ConsumeNext()
	assert.True(t, p.NextMovement(geom.NewPosition(5, 5), 65).IsZero())
}

func TestPath_Clone(t *testing.T) {
	p := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	p.ConsumeNext()

	c := p.Clone()
	c.ConsumeNext()

	// The clone's cursor advanced; the original's did not.
	next, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, geom.NewPosition(10, 0), next)
	cNext, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, geom.NewPosition(10, 10), cNext)
}

func TestPath_Length(t *testing.T) {
	p := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	assert.InDelta(t, 20, p.Length(), 1e-9)

	two := NewPath([]geom.Position{{}, geom.NewPosition(3, 4)}, geom.Position{}, geom.NewPosition(3, 4))
	assert.InDelta(t, 5, two.Length(), 1e-9)
}

// TestSalvage_RewritesOnlyTheTail: a successful salvage replaces the last
// point with the new goal and leaves start and interior untouched.
func TestSalvage_RewritesOnlyTheTail(t *testing.T) {
	old := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	newStart := geom.NewPosition(0.5, 0.5)
	newGoal := geom.NewPosition(9, 11)

	got, ok := Salvage(old, newStart, newGoal, 5.0, 3)
	require.True(t, ok)
	pts := got.Points()
	assert.Equal(t, geom.NewPosition(0, 0), pts[0], "start never rewritten")
	assert.Equal(t, geom.NewPosition(10, 0), pts[1], "interior never rewritten")
	assert.Equal(t, newGoal, pts[2])
	assert.True(t, got.Salvaged())

	// The original path is untouched.
	assert.Equal(t, geom.NewPosition(10, 10), old.Last())
	assert.False(t, old.Salvaged())
}

// TestSalvage_Refusals: nil path, short path, and endpoint drift at or over
// the threshold all refuse silently.
func TestSalvage_Refusals(t *testing.T) {
	short := NewPath(waypoints()[:2], waypoints()[0], waypoints()[1])
	full := func() *Path { return NewPath(waypoints(), waypoints()[0], waypoints()[2]) }

	_, ok := Salvage(nil, geom.Position{}, geom.Position{}, 5, 3)
	assert.False(t, ok, "nil path")

	_, ok = Salvage(short, geom.NewPosition(0, 0), geom.NewPosition(10, 0), 5, 3)
	assert.False(t, ok, "two-point path under minPoints=3")

	// The same two-point path passes under the RRT gate of 2.
	_, ok = Salvage(short, geom.NewPosition(0, 0), geom.NewPosition(10, 0), 5, 2)
	assert.True(t, ok)

	_, ok = Salvage(full(), geom.NewPosition(20, 0), geom.NewPosition(10, 10), 5, 3)
	assert.False(t, ok, "start drifted past threshold")

	_, ok = Salvage(full(), geom.NewPosition(0, 0), geom.NewPosition(10, 30), 5, 3)
	assert.False(t, ok, "goal drifted past threshold")

	// Drift exactly at the threshold refuses: the comparison is strict.
	_, ok = Salvage(full(), geom.NewPosition(5, 0), geom.NewPosition(10, 10), 5, 3)
	assert.False(t, ok)
}

// TestSalvage_PreservesCursor: salvage clones consumption state, so a
// half-walked path stays half-walked.
func TestSalvage_PreservesCursor(t *testing.T) {
	old := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	old.ConsumeNext()

	got, ok := Salvage(old, geom.NewPosition(0, 0), geom.NewPosition(10, 10), 5, 3)
	require.True(t, ok)
	next, hasNext := got.Next()
	require.True(t, hasNext)
	assert.Equal(t, geom.NewPosition(10, 0), next)
}

func TestPath_LengthAtLeastDirect(t *testing.T) {
	p := NewPath(waypoints(), waypoints()[0], waypoints()[2])
	direct := p.First().Distance(p.Last())
	assert.True(t, p.Length() >= direct-1e-9)
	assert.InDelta(t, math.Sqrt(200), direct, 1e-9)
}
