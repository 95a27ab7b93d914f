// Package game drives the clock inside the ebiten run loop.
//
// ebiten calls Update at a fixed tick rate. Update acts as the re-armed
// timer: once per interval it samples the clock and redraws the face into
// the display list. Draw repaints the last presented frame on every frame.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
	"github.com/iburimskiy/fifths-clock/internal/render"
)

// Striker sounds the hour.
type Striker interface {
	Strike(hour int) error
}

type Option func(*Game)

// WithChime strikes c whenever the sampled hour changes.
func WithChime(c Striker) Option {
	return func(g *Game) { g.chime = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithInterval overrides config.TickInterval.
func WithInterval(d time.Duration) Option {
	return func(g *Game) { g.interval = d }
}

type Game struct {
	mode     config.RenderMode
	list     *canvas.DisplayList
	painter  *Painter
	clock    clock.Clock
	chime    Striker
	log      *slog.Logger
	interval time.Duration

	// set by ebiten in production, replaced in tests
	setTitle func(string)

	lastTick time.Time
	prev     clock.TimeSample
	hasPrev  bool
}

// New validates mode and wires the loop. painter may be nil when the game is
// driven without a window.
func New(mode config.RenderMode, list *canvas.DisplayList, painter *Painter, c clock.Clock, opts ...Option) (*Game, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("starting clock with %v: %w", mode, config.ErrInvalidRenderMode)
	}
	if list == nil {
		return nil, errors.New("display list is required")
	}
	if c == nil {
		c = clock.RealClock{}
	}

	g := &Game{
		mode:     mode,
		list:     list,
		painter:  painter,
		clock:    c,
		log:      slog.Default(),
		interval: config.TickInterval,
		setTitle: ebiten.SetWindowTitle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return g.tick()
}

// tick redraws when the interval has elapsed since the last render. The
// first call always renders.
func (g *Game) tick() error {
	now := g.clock.Now()
	if !g.lastTick.IsZero() && now.Sub(g.lastTick) < g.interval {
		return nil
	}
	g.lastTick = now

	sample := clock.FromTime(now)
	if err := render.Render(g.mode, g.list, sample); err != nil {
		return fmt.Errorf("rendering %s face at %s: %w", g.mode, sample, err)
	}
	g.log.Debug("rendered frame", "mode", g.mode, "time", sample.String())
	g.setTitle(formatTitle(sample))

	if g.hasPrev && sample.Hour != g.prev.Hour && g.chime != nil {
		if err := g.chime.Strike(sample.Hour); err != nil {
			g.log.Warn("failed to strike the hour", "hour", sample.Hour, "error", err)
		}
	}
	g.prev, g.hasPrev = sample, true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter == nil {
		return
	}
	g.painter.Paint(screen, g.list.Frame())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
