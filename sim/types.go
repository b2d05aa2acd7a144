// Package sim defines the control set, engine errors, and tick constants
// for the sim subpackage of github.com/katalvlaran/zarena.
package sim

import (
	"errors"
	"time"
)

// Sentinel errors for engine lifecycle and configuration.
var (
	// ErrNilSession indicates a nil session was passed to NewEngine.
	ErrNilSession = errors.New("sim: session is nil")
	// ErrNilRegistry indicates a nil planner registry was passed to
	// NewEngine.
	ErrNilRegistry = errors.New("sim: planner registry is nil")
	// ErrAlreadyRunning indicates Start was called on a running engine.
	ErrAlreadyRunning = errors.New("sim: engine already running")
	// ErrNotRunning indicates Stop was called on a stopped engine.
	ErrNotRunning = errors.New("sim: engine not running")
	// ErrBadConfig indicates the engine configuration failed validation.
	ErrBadConfig = errors.New("sim: invalid configuration")
)

// Tick tuning.
const (
	// DefaultFramePeriod is the physics/render tick period (40 FPS).
	DefaultFramePeriod = 25 * time.Millisecond
	// DefaultPlannerPeriod is the planner tick period.
	DefaultPlannerPeriod = 100 * time.Millisecond
	// waypointRadius is the arrival distance at which the planner tick
	// consumes a path waypoint, in world units.
	waypointRadius = 2.0
)

// Control is one of the player's input controls.
type Control int

// The control set, decoded by the input shell from WASD + shift.
const (
	ControlLeft Control = iota
	ControlRight
	ControlUp
	ControlDown
	ControlSprint
)
