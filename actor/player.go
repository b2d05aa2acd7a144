package actor

import (
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/zarena/geom"
)

// Player tuning.
const (
	// PlayerMaxHealth caps the player's health.
	PlayerMaxHealth = 250
	// PlayerWalkSpeed is the base movement magnitude in world units/s.
	PlayerWalkSpeed = 65.0
	// PlayerRunSpeed is the sprint movement magnitude in world units/s.
	PlayerRunSpeed = 100.0
)

// Player is the pursued actor. Points are non-negative and only change
// through ChangePoints.
type Player struct {
	Actor
	points int
}

// NewPlayer spawns the player at full health.
func NewPlayer(position geom.Position) *Player {
	return &Player{Actor: newActor(colornames.Steelblue, position, PlayerMaxHealth)}
}

// Points returns the current point count.
func (p *Player) Points() int { return p.points }

// ChangePoints applies a delta, clamping the count at zero, and returns the
// new value.
func (p *Player) ChangePoints(delta int) int {
	p.points += delta
	if p.points < 0 {
		p.points = 0
	}

	return p.points
}

// Heal restores health up to the cap.
func (p *Player) Heal(amount int) {
	p.health += amount
	if p.health > PlayerMaxHealth {
		p.health = PlayerMaxHealth
	}
}

// MoveSpeed returns the movement magnitude for the given sprint state.
func (p *Player) MoveSpeed(sprinting bool) float64 {
	if sprinting {
		return PlayerRunSpeed
	}

	return PlayerWalkSpeed
}
