package session

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/zarena/actor"
	"github.com/katalvlaran/zarena/fairlock"
	"github.com/katalvlaran/zarena/worldmap"
)

// Session owns one running game. All actor state — player, wave, slots —
// is guarded by the actor lock; the map is immutable and free to read.
type Session struct {
	id     uuid.UUID
	m      *worldmap.MapData
	player *actor.Player
	wave   *actor.Wave
	lock   *fairlock.Mutex
	rng    *rand.Rand
	log    *zap.Logger

	listenerMu     sync.Mutex
	nextListener   ListenerID
	waveListeners  map[ListenerID]WaveListener
	pointListeners map[ListenerID]PointsListener
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger attaches a logger; the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand seeds the session's randomness (spawn choice, zombie speeds).
// The default seeds from the clock.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New creates a session over m with the player at the map's spawn point and
// no wave running yet.
func New(m *worldmap.MapData, opts ...Option) (*Session, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	s := &Session{
		id:             uuid.New(),
		m:              m,
		player:         actor.NewPlayer(m.PlayerSpawn()),
		lock:           fairlock.New(),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		log:            zap.NewNop(),
		waveListeners:  make(map[ListenerID]WaveListener),
		pointListeners: make(map[ListenerID]PointsListener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session", s.id.String()))

	return s, nil
}

// ID returns the session's identity.
func (s *Session) ID() uuid.UUID { return s.id }

// Map returns the immutable world map.
func (s *Session) Map() *worldmap.MapData { return s.m }

// Player returns the player. Access its mutable state under the lock.
func (s *Session) Player() *actor.Player { return s.player }

// CurrentWave returns the running wave, or nil before the first one.
// Call under the lock.
func (s *Session) CurrentWave() *actor.Wave { return s.wave }

// Rand returns the session's randomness source. Use under the lock.
func (s *Session) Rand() *rand.Rand { return s.rng }

// Logger returns the session's logger.
func (s *Session) Logger() *zap.Logger { return s.log }

// Lock acquires the actor lock.
func (s *Session) Lock() { s.lock.Lock() }

// TryLock attempts the actor lock within the timeout.
func (s *Session) TryLock(timeout time.Duration) bool { return s.lock.TryLock(timeout) }

// Unlock releases the actor lock, panicking on a misowned release: that is
// a corrupted invariant, not a recoverable condition.
func (s *Session) Unlock() { s.lock.MustUnlock() }

// StartNextWave replaces the current wave with the next-numbered one and
// dispatches the wave-change event while the actor lock is held.
// Returns the new wave number.
func (s *Session) StartNextWave() int {
	s.Lock()
	defer s.Unlock()

	number := 1
	if s.wave != nil {
		number = s.wave.Number() + 1
	}
	s.wave = actor.NewWave(number, s.rng)
	s.log.Info("wave started",
		zap.Int("wave", number),
		zap.Int("spawnBudget", s.wave.RemainingSpawns()),
	)
	for _, fn := range s.snapshotWaveListeners() {
		fn(WaveChangeEvent{WaveNumber: number})
	}

	return number
}

// ChangePlayerPoints adjusts the player's points under the lock and then
// dispatches the points-change event without it. Returns the new count.
func (s *Session) ChangePlayerPoints(delta int) int {
	s.Lock()
	points := s.player.ChangePoints(delta)
	s.Unlock()

	for _, fn := range s.snapshotPointListeners() {
		fn(PointsChangeEvent{PointCount: points})
	}

	return points
}

// AddWaveListener registers a wave-change listener and returns its handle.
func (s *Session) AddWaveListener(fn WaveListener) ListenerID {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.waveListeners[id] = fn

	return id
}

// RemoveWaveListener drops a registration, reporting whether it existed.
func (s *Session) RemoveWaveListener(id ListenerID) bool {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	_, ok := s.waveListeners[id]
	delete(s.waveListeners, id)

	return ok
}

// AddPointsListener registers a points-change listener and returns its
// handle.
func (s *Session) AddPointsListener(fn PointsListener) ListenerID {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.pointListeners[id] = fn

	return id
}

// RemovePointsListener drops a registration, reporting whether it existed.
func (s *Session) RemovePointsListener(id ListenerID) bool {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	_, ok := s.pointListeners[id]
	delete(s.pointListeners, id)

	return ok
}

// snapshotWaveListeners clones the wave listener list in registration
// order, so dispatch survives concurrent add/remove.
func (s *Session) snapshotWaveListeners() []WaveListener {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	ids := make([]int, 0, len(s.waveListeners))
	for id := range s.waveListeners {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]WaveListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.waveListeners[ListenerID(id)])
	}

	return out
}

// snapshotPointListeners clones the points listener list in registration
// order.
func (s *Session) snapshotPointListeners() []PointsListener {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	ids := make([]int, 0, len(s.pointListeners))
	for id := range s.pointListeners {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]PointsListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.pointListeners[ListenerID(id)])
	}

	return out
}
