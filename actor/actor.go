package actor

import (
	"image/color"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/worldmap"
)

// Actor is the shared state of every arena inhabitant. An actor is dead
// exactly when its health has reached zero.
type Actor struct {
	colour   color.Color
	position geom.Position
	velocity geom.Velocity
	health   int
}

// newActor initializes the embedded actor state.
func newActor(colour color.Color, position geom.Position, health int) Actor {
	return Actor{colour: colour, position: position, health: health}
}

// Colour returns the actor's display colour.
func (a *Actor) Colour() color.Color { return a.colour }

// Position returns the actor's current position.
func (a *Actor) Position() geom.Position { return a.position }

// SetPosition teleports the actor. Collision is the caller's concern.
func (a *Actor) SetPosition(p geom.Position) { a.position = p }

// Velocity returns the actor's current velocity.
func (a *Actor) Velocity() geom.Velocity { return a.velocity }

// SetVelocity replaces the actor's velocity.
func (a *Actor) SetVelocity(v geom.Velocity) { a.velocity = v }

// Health returns the remaining health.
func (a *Actor) Health() int { return a.health }

// Alive reports whether the actor still has health left.
func (a *Actor) Alive() bool { return a.health > 0 }

// Damage subtracts amount from health, clamping at zero.
func (a *Actor) Damage(amount int) {
	a.health -= amount
	if a.health < 0 {
		a.health = 0
	}
}

// AttemptTranslationIn moves the actor by (dx, dy) against the map with
// axis-separated sliding: the full step first, then the x component alone,
// then the y component alone, else stay put.
func (a *Actor) AttemptTranslationIn(dx, dy float64, m *worldmap.MapData) {
	for _, step := range [3][2]float64{{dx, dy}, {dx, 0}, {0, dy}} {
		candidate := a.position.Translate(step[0], step[1])
		if m.PositionIsValid(candidate) {
			a.position = candidate

			return
		}
	}
}
