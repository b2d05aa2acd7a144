package pathfind

import (
	"github.com/katalvlaran/zarena/geom"
)

// Path is a finite ordered sequence of world positions with its original
// endpoints stamped on once at construction. Search stamps the world
// positions of the start and goal nodes, which on a grid medium are the
// corners of the endpoint cells rather than the exact query points.
//
// A Path doubles as a waypoint stream: a cursor advances over the immutable
// point sequence as the consumer arrives at each waypoint. The cursor is the
// only mutable state, so snapshots taken for planning can clone cheaply.
type Path struct {
	points        []geom.Position
	cursor        int
	originalStart geom.Position
	originalGoal  geom.Position
	salvaged      bool
}

// NewPath builds a path over points, stamping the original endpoints.
// The points slice is copied.
func NewPath(points []geom.Position, originalStart, originalGoal geom.Position) *Path {
	return &Path{
		points:        append([]geom.Position(nil), points...),
		originalStart: originalStart,
		originalGoal:  originalGoal,
	}
}

// Len returns the total number of points, consumed ones included.
func (p *Path) Len() int { return len(p.points) }

// Points returns a copy of the full point sequence.
func (p *Path) Points() []geom.Position {
	return append([]geom.Position(nil), p.points...)
}

// Remaining returns a copy of the unconsumed tail of the sequence.
func (p *Path) Remaining() []geom.Position {
	return append([]geom.Position(nil), p.points[p.cursor:]...)
}

// First returns the first point of the sequence.
func (p *Path) First() geom.Position { return p.points[0] }

// Last returns the final point of the sequence.
func (p *Path) Last() geom.Position { return p.points[len(p.points)-1] }

// OriginalStart returns the start position stamped at construction.
func (p *Path) OriginalStart() geom.Position { return p.originalStart }

// OriginalGoal returns the goal position stamped at construction.
func (p *Path) OriginalGoal() geom.Position { return p.originalGoal }

// Salvaged reports whether the path's tail has been rewritten by Salvage.
func (p *Path) Salvaged() bool { return p.salvaged }

// Next returns the current waypoint and whether one remains.
func (p *Path) Next() (geom.Position, bool) {
	if p.cursor >= len(p.points) {
		return geom.Position{}, false
	}

	return p.points[p.cursor], true
}

// AtNextPosition reports whether current is within eps of the current
// waypoint. Exhausted paths report false.
func (p *Path) AtNextPosition(current geom.Position, eps float64) bool {
	next, ok := p.Next()
	if !ok {
		return false
	}

	return current.EqualWithin(next, eps)
}

// ConsumeNext advances the cursor past the current waypoint.
// Consuming an exhausted path is a no-op.
func (p *Path) ConsumeNext() {
	if p.cursor < len(p.points) {
		p.cursor++
	}
}

// NextMovement returns the velocity pointing from current toward the
// current waypoint with the given magnitude. An exhausted path yields the
// zero velocity, as does standing exactly on the waypoint.
func (p *Path) NextMovement(current geom.Position, speed float64) geom.Velocity {
	next, ok := p.Next()
	if !ok || current.Equal(next) {
		return geom.Velocity{}
	}

	return geom.NewVelocityPolar(current.Angle(next), speed)
}

// Clone returns an independent copy, cursor included.
func (p *Path) Clone() *Path {
	c := *p
	c.points = append([]geom.Position(nil), p.points...)

	return &c
}

// Length returns the total polyline length over all points.
func (p *Path) Length() float64 {
	var total float64
	for i := 1; i < len(p.points); i++ {
		total += p.points[i-1].Distance(p.points[i])
	}

	return total
}

// Salvage attempts the cheap path-reuse shortcut: when the old path has at
// least minPoints points and both endpoint drifts stay under threshold, it
// returns a clone whose final waypoint is replaced by newGoal. The start and
// the interior are never rewritten. A nil old path, a short path, or too
// much drift refuses silently — the caller regenerates.
func Salvage(old *Path, newStart, newGoal geom.Position, threshold float64, minPoints int) (*Path, bool) {
	if old == nil || old.Len() < minPoints {
		return nil, false
	}
	if newStart.Distance(old.originalStart) >= threshold ||
		newGoal.Distance(old.originalGoal) >= threshold {
		return nil, false
	}
	c := old.Clone()
	c.points[len(c.points)-1] = newGoal
	c.salvaged = true

	return c, true
}
