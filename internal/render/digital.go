package render

import (
	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
	"github.com/iburimskiy/fifths-clock/internal/fifths"
)

const (
	hourGlyphX   = (config.FrameMarginX + config.CenterX) / 2
	minuteGlyphX = (config.WindowWidth - config.FrameMarginX + config.CenterX) / 2
)

// CrossFade describes the two minor-key glyphs blended for a minute.
//
// Opacities are the raw distances from minute to each multiple of five and
// are not normalised. The surface clamps them, so in practice both glyphs
// show at full strength between boundaries.
type CrossFade struct {
	Round0, Round1     int
	Symbol0, Symbol1   string
	Opacity0, Opacity1 float64
}

// MinuteCrossFade picks the glyphs either side of minute. On an exact
// multiple of five only the first glyph is visible.
func MinuteCrossFade(minute int) CrossFade {
	r0 := minute / 5
	r1 := (minute + 4) / 5
	cf := CrossFade{
		Round0:  r0,
		Round1:  r1,
		Symbol0: fifths.MinuteMinor[r0%fifths.Positions],
		Symbol1: fifths.MinuteMinor[r1%fifths.Positions],
	}
	if r0 == r1 {
		cf.Opacity0, cf.Opacity1 = 1, 0
		return cf
	}
	cf.Opacity0 = float64(abs(minute - 5*r0))
	cf.Opacity1 = float64(abs(minute - 5*r1))
	return cf
}

// Digital draws the framed face: hour key, colon, and the cross-faded
// minute key.
func Digital(s canvas.Surface, t clock.TimeSample) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.Clear()
	s.Rect(config.FrameMarginX, config.FrameMarginY,
		config.WindowWidth-config.FrameMarginX, config.WindowHeight-config.FrameMarginY, canvas.Black)
	s.Text(config.CenterX, config.CenterY, ":", config.GlyphSize, canvas.Black, 1)
	s.Text(hourGlyphX, config.CenterY, fifths.HourMajor[t.Hour], config.GlyphSize, canvas.Black, 1)

	cf := MinuteCrossFade(t.Minute)
	s.Text(minuteGlyphX, config.CenterY, cf.Symbol0, config.GlyphSize, canvas.Black, cf.Opacity0)
	s.Text(minuteGlyphX, config.CenterY, cf.Symbol1, config.GlyphSize, canvas.Black, cf.Opacity1)

	s.Present()
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
