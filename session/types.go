// Package session defines the event types, listener handles, and sentinel
// errors for the session subpackage of github.com/katalvlaran/zarena.
package session

import (
	"errors"
)

// Sentinel errors for session construction.
var (
	// ErrNilMap indicates a nil *worldmap.MapData was passed to New.
	ErrNilMap = errors.New("session: world map is nil")
)

// WaveChangeEvent announces that a new wave has started.
type WaveChangeEvent struct {
	WaveNumber int
}

// PointsChangeEvent announces the player's new point count.
type PointsChangeEvent struct {
	PointCount int
}

// WaveListener receives wave-change events. It is invoked with the actor
// lock held and must not block.
type WaveListener func(WaveChangeEvent)

// PointsListener receives points-change events. It is invoked without the
// actor lock.
type PointsListener func(PointsChangeEvent)

// ListenerID identifies one registration for later removal.
type ListenerID int
