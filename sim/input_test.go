package sim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputState_SetAndPressed(t *testing.T) {
	in := NewInputState()
	assert.False(t, in.Pressed(ControlLeft))

	in.Set(ControlLeft, true)
	assert.True(t, in.Pressed(ControlLeft))

	in.Set(ControlLeft, false)
	assert.False(t, in.Pressed(ControlLeft))
}

func TestInputState_Axes(t *testing.T) {
	in := NewInputState()

	dx, dy, sprint := in.Axes()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, sprint)

	in.Set(ControlRight, true)
	in.Set(ControlUp, true)
	in.Set(ControlSprint, true)
	dx, dy, sprint = in.Axes()
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, -1.0, dy, "up decreases y in screen coordinates")
	assert.True(t, sprint)

	// Opposite keys cancel.
	in.Set(ControlLeft, true)
	dx, _, _ = in.Axes()
	assert.Zero(t, dx)
}

// TestInputState_Concurrent hammers writer and reader; the race detector is
// the actual assertion here.
func TestInputState_Concurrent(t *testing.T) {
	in := NewInputState()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			in.Set(Control(i%5), i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			in.Axes()
		}
	}()
	wg.Wait()
}
