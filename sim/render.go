package sim

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/zarena/actor"
	"github.com/katalvlaran/zarena/geom"
	"github.com/katalvlaran/zarena/session"
	"github.com/katalvlaran/zarena/worldmap"
)

// Side-panel layout.
const (
	panelWidth  = 160
	panelMargin = 12
)

// actorSprite is the render snapshot of one actor.
type actorSprite struct {
	pos        geom.Position
	col        color.Color
	healthFrac float64
}

// Renderer composes frames for one session. Frame takes the actor lock
// only long enough to snapshot positions, colours, and pending paths into
// private buffers, then draws without it.
type Renderer struct {
	sess       *session.Session
	background image.Image
	debugPaths bool

	mu         sync.Mutex
	waveNumber int
	points     int
	waveID     session.ListenerID
	pointsID   session.ListenerID
}

// NewRenderer caches the map background and subscribes to the session's
// wave and points events for the side panel.
func NewRenderer(sess *session.Session, debugPaths bool) *Renderer {
	r := &Renderer{
		sess:       sess,
		background: sess.Map().Displayed(),
		debugPaths: debugPaths,
	}
	r.waveID = sess.AddWaveListener(func(e session.WaveChangeEvent) {
		r.mu.Lock()
		r.waveNumber = e.WaveNumber
		r.mu.Unlock()
	})
	r.pointsID = sess.AddPointsListener(func(e session.PointsChangeEvent) {
		r.mu.Lock()
		r.points = e.PointCount
		r.mu.Unlock()
	})

	return r
}

// Close unsubscribes the renderer's listeners.
func (r *Renderer) Close() {
	r.sess.RemoveWaveListener(r.waveID)
	r.sess.RemovePointsListener(r.pointsID)
}

// Frame renders the current state: map, actor disks, optional path
// overlays, and the side panel.
func (r *Renderer) Frame() image.Image {
	// Snapshot actor state under the lock.
	var (
		sprites []actorSprite
		trails  [][]geom.Position
	)
	r.sess.Lock()
	p := r.sess.Player()
	sprites = append(sprites, actorSprite{
		pos:        p.Position(),
		col:        p.Colour(),
		healthFrac: 1,
	})
	if w := r.sess.CurrentWave(); w != nil {
		maxHealth := w.ZombieHealth()
		for i := 0; i < actor.MaxZombies; i++ {
			z := w.ZombieAt(i)
			if z == nil {
				continue
			}
			frac := 1.0
			if maxHealth > 0 {
				frac = float64(z.Health()) / float64(maxHealth)
			}
			sprites = append(sprites, actorSprite{pos: z.Position(), col: z.Colour(), healthFrac: frac})
			if r.debugPaths {
				if path := w.PathAt(i); path != nil {
					trails = append(trails, append([]geom.Position{z.Position()}, path.Remaining()...))
				}
			}
		}
	}
	r.sess.Unlock()

	r.mu.Lock()
	wave, points := r.waveNumber, r.points
	r.mu.Unlock()

	// Draw without the lock.
	dc := gg.NewContext(worldmap.Width+panelWidth, worldmap.Height)
	dc.DrawImage(r.background, 0, 0)

	for _, trail := range trails {
		dc.SetRGBA(0.85, 0.3, 0.1, 0.8)
		dc.SetLineWidth(1)
		for i := 1; i < len(trail); i++ {
			dc.DrawLine(trail[i-1].X, trail[i-1].Y, trail[i].X, trail[i].Y)
		}
		dc.Stroke()
	}

	for _, s := range sprites {
		dc.SetColor(tintByHealth(s.col, s.healthFrac))
		dc.DrawCircle(s.pos.X, s.pos.Y, worldmap.ActorRadius)
		dc.Fill()
	}

	r.drawPanel(dc, wave, points)

	return dc.Image()
}

// drawPanel fills the side panel and prints the wave number and the
// player's point count.
func (r *Renderer) drawPanel(dc *gg.Context, wave, points int) {
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.DrawRectangle(worldmap.Width, 0, panelWidth, worldmap.Height)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.92, 0.92, 0.92)
	dc.DrawString(fmt.Sprintf("Wave: %d", wave), worldmap.Width+panelMargin, 2*panelMargin)
	dc.DrawString(fmt.Sprintf("Points: %d", points), worldmap.Width+panelMargin, 4*panelMargin)
}

// tintByHealth fades a colour toward dark red as health drains.
func tintByHealth(c color.Color, frac float64) color.Color {
	if frac >= 1 {
		return c
	}
	if frac < 0 {
		frac = 0
	}
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	wounded := colorful.Color{R: 0.45, G: 0.08, B: 0.05}

	return base.BlendRgb(wounded, 1-frac)
}
