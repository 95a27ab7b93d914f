// Package render draws the two clock faces onto a canvas.Surface.
//
// Each call is a pure function of its TimeSample: the surface is cleared,
// the whole face is drawn again and the frame is presented. An invalid
// sample is a caller bug and is reported before anything is drawn.
package render

import (
	"fmt"
	"math"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
)

// Render dispatches to the face for mode.
func Render(mode config.RenderMode, s canvas.Surface, t clock.TimeSample) error {
	switch mode {
	case config.Analog:
		return Analog(s, t)
	case config.Digital:
		return Digital(s, t)
	default:
		return fmt.Errorf("render %v: %w", mode, config.ErrInvalidRenderMode)
	}
}

// polar converts an angle measured counter-clockwise from the positive x
// axis into window coordinates around the dial centre.
func polar(r, theta float64) (x, y float64) {
	return config.CenterX + r*math.Cos(theta), config.CenterY - r*math.Sin(theta)
}
