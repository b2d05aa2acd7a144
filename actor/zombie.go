package actor

import (
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/zarena/geom"
)

// Zombie speed bounds in world units/s. Every zombie's speed is sampled
// once at spawn and clamped into this range.
const (
	ZombieMinSpeed = 25.0
	ZombieMaxSpeed = 55.0
)

// Skew-normal speed distribution parameters: located just above the floor
// with a long right tail, so most zombies shamble and a few sprint.
const (
	speedLocation = ZombieMinSpeed + 4
	speedScale    = 9.0
	speedSkew     = 4.0
)

// Zombie is a pursuing actor with a fixed per-instance speed.
type Zombie struct {
	Actor
	speed float64
}

// NewZombie spawns a zombie with the given health and a freshly sampled
// speed.
func NewZombie(position geom.Position, health int, rng *rand.Rand) *Zombie {
	return &Zombie{
		Actor: newActor(colornames.Darkolivegreen, position, health),
		speed: sampleSpeed(rng),
	}
}

// Speed returns the zombie's sampled movement magnitude.
func (z *Zombie) Speed() float64 { return z.speed }

// sampleSpeed draws from a skew-normal via the two-normal construction:
// Z = δ·|U₀| + √(1−δ²)·U₁ with δ = α/√(1+α²), then location-scales and
// clamps into [ZombieMinSpeed, ZombieMaxSpeed].
func sampleSpeed(rng *rand.Rand) float64 {
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: exprand.NewSource(rng.Uint64())}
	delta := speedSkew / math.Sqrt(1+speedSkew*speedSkew)
	z := delta*math.Abs(unit.Rand()) + math.Sqrt(1-delta*delta)*unit.Rand()
	speed := speedLocation + speedScale*z

	return math.Min(ZombieMaxSpeed, math.Max(ZombieMinSpeed, speed))
}
