package actor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zarena/actor"
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/worldmap"
)

// slidingMap builds a map with one obstacle block for collision tests.
func slidingMap(t *testing.T) *worldmap.MapData {
	t.Helper()
	g := make([][]bool, worldmap.Height)
	for y := range g {
		g[y] = make([]bool, worldmap.Width)
	}
	// A vertical wall segment: pixels x∈[200,210], y∈[100,300].
	for y := 100; y <= 300; y++ {
		for x := 200; x <= 210; x++ {
			g[y][x] = true
		}
	}
	m, err := worldmap.NewFromGrid(g, worldmap.SpawnTable{
		Player:  geom.NewPosition(50, 50),
		Zombies: []geom.Position{geom.NewPosition(60, 50)},
	})
	require.NoError(t, err)

	return m
}

// TestAttemptTranslation_FreeSpace: the full step applies when valid.
func TestAttemptTranslation_FreeSpace(t *testing.T) {
	m := slidingMap(t)
	p := actor.NewPlayer(geom.NewPosition(50, 50))
	p.AttemptTranslationIn(3, 4, m)
	assert.Equal(t, geom.NewPosition(53, 54), p.Position())
}

// TestAttemptTranslation_SlideAlongWall: a diagonal step into the wall
// keeps the axis component that stays valid.
func TestAttemptTranslation_SlideAlongWall(t *testing.T) {
	m := slidingMap(t)
	// Just left of the inflated wall face (wall inflates to x≥194).
	p := actor.NewPlayer(geom.NewPosition(190, 200))

	// Step right+down: x is blocked, y slides.
	p.AttemptTranslationIn(10, 5, m)
	assert.Equal(t, geom.NewPosition(190, 205), p.Position())

	// Step purely into the wall: fully stuck.
	p.AttemptTranslationIn(10, 0, m)
	assert.Equal(t, geom.NewPosition(190, 205), p.Position())
}

// TestAttemptTranslation_PrefersXAxis: when both single-axis fallbacks are
// valid the x component wins (full step tried first, then x, then y).
func TestAttemptTranslation_PrefersXAxis(t *testing.T) {
	m := slidingMap(t)
	// Diagonally below-left of the inflated wall corner (194, 306):
	// the combined step lands inside the wall, either axis alone is fine.
	p := actor.NewPlayer(geom.NewPosition(192, 310))
	p.AttemptTranslationIn(4, -6, m)
	assert.Equal(t, geom.NewPosition(196, 310), p.Position())
}

func TestActor_HealthAndDamage(t *testing.T) {
	p := actor.NewPlayer(geom.NewPosition(10, 10))
	assert.Equal(t, actor.PlayerMaxHealth, p.Health())
	assert.True(t, p.Alive())

	p.Damage(100)
	assert.Equal(t, 150, p.Health())
	p.Damage(500)
	assert.Equal(t, 0, p.Health(), "health clamps at zero")
	assert.False(t, p.Alive())

	p.Heal(50)
	assert.Equal(t, 50, p.Health())
	p.Heal(10_000)
	assert.Equal(t, actor.PlayerMaxHealth, p.Health(), "heal clamps at the cap")
}

func TestPlayer_Points(t *testing.T) {
	p := actor.NewPlayer(geom.NewPosition(0, 0))
	assert.Equal(t, 0, p.Points())
	assert.Equal(t, 70, p.ChangePoints(70))
	assert.Equal(t, 20, p.ChangePoints(-50))
	assert.Equal(t, 0, p.ChangePoints(-999), "points clamp at zero")
}

func TestPlayer_MoveSpeed(t *testing.T) {
	p := actor.NewPlayer(geom.NewPosition(0, 0))
	assert.Equal(t, actor.PlayerWalkSpeed, p.MoveSpeed(false))
	assert.Equal(t, actor.PlayerRunSpeed, p.MoveSpeed(true))
}

// TestZombie_SpeedDistribution: sampled speeds respect the bounds and
// actually vary.
func TestZombie_SpeedDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		z := actor.NewZombie(geom.NewPosition(5, 5), 125, rng)
		s := z.Speed()
		require.GreaterOrEqual(t, s, actor.ZombieMinSpeed)
		require.LessOrEqual(t, s, actor.ZombieMaxSpeed)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 50, "speeds should be continuously distributed")
}
