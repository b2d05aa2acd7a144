package visgraph_test

import (
	"testing"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/grid"
	"github.com/katalvlaran/zarena/visgraph"
	"github.com/katalvlaran/zarena/worldmap"
)

// benchFixture builds a ratio-3 discretization of a map with a handful of
// blocks, the shape a real arena tends to have.
func benchFixture(b *testing.B) *grid.DiscretizedMap {
	b.Helper()
	g := make([][]bool, worldmap.Height)
	for y := range g {
		g[y] = make([]bool, worldmap.Width)
	}
	blocks := [][4]int{
		{100, 80, 180, 140},
		{260, 40, 330, 120},
		{420, 90, 500, 180},
		{150, 240, 260, 320},
		{360, 250, 470, 340},
	}
	for _, r := range blocks {
		for y := r[1]; y <= r[3]; y++ {
			for x := r[0]; x <= r[2]; x++ {
				g[y][x] = true
			}
		}
	}
	m, err := worldmap.NewFromGrid(g, worldmap.SpawnTable{
		Player:  geom.NewPosition(20, 20),
		Zombies: []geom.Position{geom.NewPosition(40, 20)},
	})
	if err != nil {
		b.Fatalf("setup map failed: %v", err)
	}
	dm, err := grid.New(m, 3)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	return dm
}

// BenchmarkBuild measures one-time graph construction over a five-block
// arena.
func BenchmarkBuild(b *testing.B) {
	dm := benchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := visgraph.Build(dm, visgraph.WithCleanThreshold(10)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEndpointCycle measures the per-query cost: add both endpoints,
// remove both endpoints. This runs every planner tick per zombie.
func BenchmarkEndpointCycle(b *testing.B) {
	dm := benchFixture(b)
	vg, err := visgraph.Build(dm, visgraph.WithCleanThreshold(10))
	if err != nil {
		b.Fatal(err)
	}
	start := geom.NewPosition(10, 10)
	goal := geom.NewPosition(190, 125)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := vg.AddEndpoint(start)
		g := vg.AddEndpoint(goal)
		_ = vg.RemoveEndpoint(g)
		_ = vg.RemoveEndpoint(s)
	}
}
