package actor

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/pathfind"
)

// Wave sizing.
const (
	// MaxZombies bounds the number of simultaneously live zombies.
	MaxZombies = 25
	// healthPerWave scales per-zombie health with the wave number.
	healthPerWave = 125
	// spawnBase and spawnGrowth size the spawn budget: ⌊spawnBase·growth^W⌋.
	spawnBase   = 5.0
	spawnGrowth = 1.2
)

// Wave owns a fixed-capacity set of zombie slots with a parallel path slot
// per index. A path is present at slot i only if a zombie is; the converse
// may be false (freshly spawned, not yet planned for).
//
// Wave does not synchronize: every access happens under the actor lock.
type Wave struct {
	number          int
	zombieHealth    int
	remainingSpawns int
	zombies         [MaxZombies]*Zombie
	paths           [MaxZombies]*pathfind.Path
	rng             *rand.Rand
}

// NewWave creates wave number w with its derived health and spawn budget.
func NewWave(w int, rng *rand.Rand) *Wave {
	return &Wave{
		number:          w,
		zombieHealth:    healthPerWave * w,
		remainingSpawns: int(math.Floor(spawnBase * math.Pow(spawnGrowth, float64(w)))),
		rng:             rng,
	}
}

// Number returns the wave number.
func (w *Wave) Number() int { return w.number }

// ZombieHealth returns the health every zombie of this wave spawns with.
func (w *Wave) ZombieHealth() int { return w.zombieHealth }

// RemainingSpawns returns how many zombies the wave may still spawn.
func (w *Wave) RemainingSpawns() int { return w.remainingSpawns }

// ZombieAt returns the zombie in slot i, or nil.
func (w *Wave) ZombieAt(i int) *Zombie { return w.zombies[i] }

// PathAt returns the path in slot i, or nil.
func (w *Wave) PathAt(i int) *pathfind.Path { return w.paths[i] }

// SetPathAt installs a path for slot i. Installing onto an empty zombie
// slot is refused, preserving the slot invariant.
func (w *Wave) SetPathAt(i int, p *pathfind.Path) bool {
	if w.zombies[i] == nil {
		return false
	}
	w.paths[i] = p

	return true
}

// SpawnZombie fills the lowest empty slot with a fresh zombie at p,
// consuming one budgeted spawn. Returns the slot index and whether a spawn
// happened; an exhausted budget or a full wave spawns nothing.
func (w *Wave) SpawnZombie(p geom.Position) (int, bool) {
	if w.remainingSpawns <= 0 {
		return 0, false
	}
	for i := range w.zombies {
		if w.zombies[i] != nil {
			continue
		}
		w.zombies[i] = NewZombie(p, w.zombieHealth, w.rng)
		w.remainingSpawns--

		return i, true
	}

	return 0, false
}

// KilledZombieAt clears slot i, zombie and path both.
func (w *Wave) KilledZombieAt(i int) {
	w.zombies[i] = nil
	w.paths[i] = nil
}

// RespawnZombie moves the zombie in slot i to p with velocity and path
// reset. Health is preserved; the respawn costs no budget. Empty slots are
// ignored.
func (w *Wave) RespawnZombie(i int, p geom.Position) {
	z := w.zombies[i]
	if z == nil {
		return
	}
	z.SetPosition(p)
	z.SetVelocity(geom.Velocity{})
	w.paths[i] = nil
}

// LiveCount returns the number of occupied zombie slots.
func (w *Wave) LiveCount() int {
	n := 0
	for _, z := range w.zombies {
		if z != nil {
			n++
		}
	}

	return n
}

// IsFinished reports whether the wave is over: the spawn budget is spent
// and every slot is empty. (The cleared-wave reading; a wave in progress
// with live zombies is never finished.)
func (w *Wave) IsFinished() bool {
	return w.remainingSpawns == 0 && w.LiveCount() == 0
}
