package sim_test

import (
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/pathfind"
)

// twoPointPath builds the minimal path fixture.
func twoPointPath(a, b geom.Position) *pathfind.Path {
	return pathfind.NewPath([]geom.Position{a, b}, a, b)
}
