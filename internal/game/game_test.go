package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

type fakeChime struct {
	hours []int
	err   error
}

func (f *fakeChime) Strike(hour int) error {
	f.hours = append(f.hours, hour)
	return f.err
}

func newTestGame(t *testing.T, mode config.RenderMode, start time.Time, opts ...Option) (*Game, *canvas.DisplayList, *fakeClock, *[]string) {
	t.Helper()
	list := canvas.NewDisplayList()
	fc := &fakeClock{now: start}
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	g, err := New(mode, list, nil, fc, opts...)
	require.NoError(t, err)

	var titles []string
	g.setTitle = func(s string) { titles = append(titles, s) }
	return g, list, fc, &titles
}

func TestNew_RejectsInvalidMode(t *testing.T) {
	list := canvas.NewDisplayList()
	_, err := New(config.RenderMode(3), list, nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalidRenderMode)
	assert.Zero(t, list.Presents(), "no drawing before the mode is accepted")
}

func TestNew_RequiresDisplayList(t *testing.T) {
	_, err := New(config.Analog, nil, nil, nil)
	assert.Error(t, err)
}

func TestTick_RendersOncePerInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 8, 0, 0, time.Local)
	g, list, fc, titles := newTestGame(t, config.Analog, start)

	require.NoError(t, g.tick())
	assert.Equal(t, 1, list.Presents(), "first tick renders immediately")

	fc.Advance(500 * time.Millisecond)
	require.NoError(t, g.tick())
	assert.Equal(t, 1, list.Presents())

	fc.Advance(500 * time.Millisecond)
	require.NoError(t, g.tick())
	assert.Equal(t, 2, list.Presents())

	require.Len(t, *titles, 2)
	assert.Equal(t, "Circle of fifths clock - 10:08:01 (Bb major)", (*titles)[1])
}

func TestTick_DigitalUsesSampledTime(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 17, 5, 0, time.Local)
	g, list, _, _ := newTestGame(t, config.Digital, start)

	require.NoError(t, g.tick())
	frame := list.Frame()
	require.Len(t, frame, 5)
	assert.Equal(t, "C", frame[2].Text)
	assert.Equal(t, "F#", frame[3].Text)
	assert.Equal(t, "C#", frame[4].Text)
}

func TestTick_ChimesOnHourChange(t *testing.T) {
	start := time.Date(2024, 1, 1, 14, 59, 58, 0, time.Local)
	ch := &fakeChime{}
	g, _, fc, _ := newTestGame(t, config.Analog, start, WithChime(ch))

	// The first sample establishes the hour and never chimes.
	require.NoError(t, g.tick())
	assert.Empty(t, ch.hours)

	fc.Advance(time.Second)
	require.NoError(t, g.tick())
	assert.Empty(t, ch.hours)

	fc.Advance(time.Second)
	require.NoError(t, g.tick())
	assert.Equal(t, []int{15}, ch.hours)

	fc.Advance(time.Second)
	require.NoError(t, g.tick())
	assert.Equal(t, []int{15}, ch.hours)
}

func TestTick_ChimeFailureIsNotFatal(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local)
	ch := &fakeChime{err: errors.New("no audio device")}
	g, list, fc, _ := newTestGame(t, config.Digital, start, WithChime(ch))

	require.NoError(t, g.tick())
	fc.Advance(time.Second)
	require.NoError(t, g.tick())
	assert.Equal(t, []int{0}, ch.hours)
	assert.Equal(t, 2, list.Presents())
}

func TestTick_CustomInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	g, list, fc, _ := newTestGame(t, config.Analog, start, WithInterval(5*time.Second))

	for i := 0; i < 10; i++ {
		require.NoError(t, g.tick())
		fc.Advance(time.Second)
	}
	assert.Equal(t, 2, list.Presents())
}

func TestLayoutIsFixed(t *testing.T) {
	g, _, _, _ := newTestGame(t, config.Analog, time.Now())
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, config.WindowWidth, w)
	assert.Equal(t, config.WindowHeight, h)
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Circle of fifths clock - 00:00:00 (C major)", formatTitle(clock.TimeSample{}))
	assert.Equal(t, "Circle of fifths clock - 19:05:09 (Db major)", formatTitle(clock.TimeSample{Hour: 19, Minute: 5, Second: 9}))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-2))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(3))
}
