package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/pathfind"
)

// ExampleSalvage demonstrates the cheap path-reuse shortcut: when both
// endpoints have barely moved, only the final waypoint is rewritten.
func ExampleSalvage() {
	points := []geom.Position{
		geom.NewPosition(0, 0),
		geom.NewPosition(40, 30),
		geom.NewPosition(80, 0),
	}
	old := pathfind.NewPath(points, points[0], points[2])

	// The pursuer and its target both drifted under a unit.
	salvaged, ok := pathfind.Salvage(old,
		geom.NewPosition(0.5, 0.5),
		geom.NewPosition(80.5, 0.5),
		5.0, 3,
	)
	fmt.Println(ok)
	fmt.Printf("%.1f,%.1f\n", salvaged.Last().X, salvaged.Last().Y)

	// Drifting past the threshold refuses; the caller replans instead.
	_, ok = pathfind.Salvage(old,
		geom.NewPosition(20, 0),
		geom.NewPosition(80, 0),
		5.0, 3,
	)
	fmt.Println(ok)
	// Output:
	// true
	// 80.5,0.5
	// false
}
