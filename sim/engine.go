package sim

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zarena/actor"
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/pathfind"
	"github.com/katalvlaran/zarena/planner"
	"github.com/katalvlaran/zarena/session"
)

// Engine runs the two worker goroutines of one session. Construct with
// NewEngine, then Start/Stop. Stop joins both workers; a stopped engine
// can be started again.
type Engine struct {
	sess          *session.Session
	reg           *planner.Registry
	input         *InputState
	clk           clock.Clock
	log           *zap.Logger
	repaint       func()
	framePeriod   time.Duration
	plannerPeriod time.Duration

	keepAlive atomic.Bool
	group     *errgroup.Group
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithClock substitutes the wall clock, for tests.
func WithClock(clk clock.Clock) EngineOption {
	return func(e *Engine) {
		if clk != nil {
			e.clk = clk
		}
	}
}

// WithRepaint installs the repaint request hook the physics tick calls
// once per frame. The hook must be cheap; rendering happens elsewhere.
func WithRepaint(fn func()) EngineOption {
	return func(e *Engine) {
		e.repaint = fn
	}
}

// NewEngine wires an engine over a session, a planner registry, and the
// shared input state.
func NewEngine(sess *session.Session, reg *planner.Registry, input *InputState, cfg Config, opts ...EngineOption) (*Engine, error) {
	if sess == nil {
		return nil, ErrNilSession
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if input == nil {
		input = NewInputState()
	}
	e := &Engine{
		sess:          sess,
		reg:           reg,
		input:         input,
		clk:           clock.New(),
		log:           sess.Logger(),
		framePeriod:   cfg.FramePeriod(),
		plannerPeriod: cfg.PlannerPeriod(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Input returns the engine's input state.
func (e *Engine) Input() *InputState { return e.input }

// Start launches the physics and planner goroutines.
func (e *Engine) Start() error {
	if !e.keepAlive.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	e.group = &errgroup.Group{}
	e.group.Go(e.physicsLoop)
	e.group.Go(e.plannerLoop)
	e.log.Info("engine started",
		zap.Duration("framePeriod", e.framePeriod),
		zap.Duration("plannerPeriod", e.plannerPeriod),
	)

	return nil
}

// Stop flips the keepAlive flag and joins both workers.
func (e *Engine) Stop() error {
	if !e.keepAlive.CompareAndSwap(true, false) {
		return ErrNotRunning
	}
	err := e.group.Wait()
	e.log.Info("engine stopped")

	return multierr.Combine(err)
}

// physicsLoop is the render/input/physics worker: translate, steer from
// input, repaint, sleep a frame.
func (e *Engine) physicsLoop() error {
	e.log.Debug("physics worker up")
	dt := e.framePeriod.Seconds()
	for e.keepAlive.Load() {
		e.physicsStep(dt)
		if e.repaint != nil {
			e.repaint()
		}
		e.clk.Sleep(e.framePeriod)
	}
	e.log.Debug("physics worker down")

	return nil
}

// physicsStep advances every actor by one frame. The lock is taken with a
// half-frame timeout: losing the race skips the frame rather than stalling
// the render cadence.
func (e *Engine) physicsStep(dt float64) {
	if !e.sess.TryLock(e.framePeriod / 2) {
		e.log.Debug("physics frame skipped: actor lock busy")

		return
	}
	defer e.sess.Unlock()

	// Translate with the PREVIOUS velocity, then derive the new one from
	// the key state: input is one frame behind on purpose.
	p := e.sess.Player()
	vdx, vdy := p.Velocity().Displacement(dt)
	p.AttemptTranslationIn(vdx, vdy, e.sess.Map())

	dx, dy, sprint := e.input.Axes()
	if dx == 0 && dy == 0 {
		p.SetVelocity(geom.Velocity{})
	} else {
		heading := math.Atan2(dy, dx)
		magnitude := math.Hypot(dx, dy) * p.MoveSpeed(sprint)
		p.SetVelocity(geom.NewVelocityPolar(heading, magnitude))
	}

	if w := e.sess.CurrentWave(); w != nil {
		for i := 0; i < actor.MaxZombies; i++ {
			z := w.ZombieAt(i)
			if z == nil {
				continue
			}
			zdx, zdy := z.Velocity().Displacement(dt)
			z.AttemptTranslationIn(zdx, zdy, e.sess.Map())
		}
	}
}

// plannerLoop is the planning worker: snapshot, plan outside the lock,
// install, sleep whatever is left of the period.
func (e *Engine) plannerLoop() error {
	e.log.Debug("planner worker up")
	for e.keepAlive.Load() {
		started := e.clk.Now()
		e.plannerStep()
		if remaining := e.plannerPeriod - e.clk.Since(started); remaining > 0 {
			e.clk.Sleep(remaining)
		}
	}
	e.log.Debug("planner worker down")

	return nil
}

// plannerStep runs one plan-and-install cycle for every live zombie.
func (e *Engine) plannerStep() {
	// Phase 1 — snapshot goal and per-slot state under the lock.
	var (
		goal      geom.Position
		live      [actor.MaxZombies]bool
		positions [actor.MaxZombies]geom.Position
		paths     [actor.MaxZombies]*pathfind.Path
	)
	e.sess.Lock()
	w := e.sess.CurrentWave()
	if w == nil {
		e.sess.Unlock()

		return
	}
	goal = e.sess.Player().Position()
	for i := 0; i < actor.MaxZombies; i++ {
		if z := w.ZombieAt(i); z != nil {
			live[i] = true
			positions[i] = z.Position()
			paths[i] = w.PathAt(i)
		}
	}
	e.sess.Unlock()

	// Phase 2 — salvage or replan outside the lock. The registry handle is
	// read exactly once: a concurrent Renew affects the next cycle, never
	// the middle of this one.
	pl := e.reg.Current()
	var (
		fresh [actor.MaxZombies]*pathfind.Path
		got   [actor.MaxZombies]bool
	)
	if pl != nil {
		for i := range live {
			if !live[i] {
				continue
			}
			if salvaged, ok := pl.SalvagePath(paths[i], positions[i], goal); ok {
				fresh[i], got[i] = salvaged, true

				continue
			}
			if p := pl.GeneratePath(positions[i], goal); p != nil {
				fresh[i], got[i] = p, true
			} else {
				e.log.Debug("planning failed", zap.Int("slot", i), zap.String("planner", pl.Name()))
			}
		}
	}

	// Phase 3 — install under the lock. Zombies that vanished in between
	// are skipped; pathless zombies respawn; everyone else is steered at
	// its current waypoint.
	e.sess.Lock()
	defer e.sess.Unlock()
	w = e.sess.CurrentWave()
	if w == nil {
		return
	}
	for i := 0; i < actor.MaxZombies; i++ {
		z := w.ZombieAt(i)
		if z == nil {
			continue
		}
		if got[i] {
			w.SetPathAt(i, fresh[i])
		}
		p := w.PathAt(i)
		if p == nil {
			w.RespawnZombie(i, e.sess.Map().RandomZombieSpawn(e.sess.Rand()))

			continue
		}
		if p.AtNextPosition(z.Position(), waypointRadius) {
			p.ConsumeNext()
		}
		z.SetVelocity(p.NextMovement(z.Position(), actor.ZombieMinSpeed))
	}

	// Keep the wave populated while it has budget left.
	if w.RemainingSpawns() > 0 {
		if _, ok := w.SpawnZombie(e.sess.Map().RandomZombieSpawn(e.sess.Rand())); ok {
			e.log.Debug("zombie spawned", zap.Int("remaining", w.RemainingSpawns()))
		}
	}
}
