package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// DefaultEpsilon is the tolerance used by Position.Equal.
// Two positions closer than this are considered the same point.
const DefaultEpsilon = 0.01

// Position is a point in world coordinates. The zero value is the origin.
type Position struct {
	r2.Point
}

// NewPosition returns the position (x, y).
func NewPosition(x, y float64) Position {
	return Position{r2.Point{X: x, Y: y}}
}

// Distance returns the Euclidean distance to q.
func (p Position) Distance(q Position) float64 {
	return p.Sub(q.Point).Norm()
}

// Angle returns the heading from p to q in radians, measured with
// math.Atan2 (east = 0, counter-clockwise positive).
func (p Position) Angle(q Position) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Translate returns the position shifted by (dx, dy).
func (p Position) Translate(dx, dy float64) Position {
	return Position{r2.Point{X: p.X + dx, Y: p.Y + dy}}
}

// Equal reports whether q is within DefaultEpsilon of p.
func (p Position) Equal(q Position) bool {
	return p.EqualWithin(q, DefaultEpsilon)
}

// EqualWithin reports whether q is within eps of p.
func (p Position) EqualWithin(q Position, eps float64) bool {
	return p.Distance(q) < eps
}

// Scale returns the position with both coordinates multiplied by f.
// Used to move between world and discretized coordinate spaces.
func (p Position) Scale(f float64) Position {
	return Position{r2.Point{X: p.X * f, Y: p.Y * f}}
}

// Velocity is a 2D velocity in world units per second.
// The zero value is "at rest".
type Velocity struct {
	r2.Point
}

// NewVelocity returns the velocity with components (x, y).
func NewVelocity(x, y float64) Velocity {
	return Velocity{r2.Point{X: x, Y: y}}
}

// NewVelocityPolar returns the velocity with the given heading (radians)
// and magnitude: (cos θ·‖v‖, sin θ·‖v‖).
func NewVelocityPolar(heading, magnitude float64) Velocity {
	return Velocity{r2.Point{
		X: math.Cos(heading) * magnitude,
		Y: math.Sin(heading) * magnitude,
	}}
}

// Magnitude returns ‖v‖.
func (v Velocity) Magnitude() float64 {
	return v.Norm()
}

// Heading returns the direction of travel in radians (atan2 convention).
// The heading of a zero velocity is 0.
func (v Velocity) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether both components are exactly zero.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Displacement returns the (dx, dy) covered over dt seconds.
func (v Velocity) Displacement(dt float64) (dx, dy float64) {
	return v.X * dt, v.Y * dt
}
