// Package canvas defines the drawing surface the clock faces render onto.
//
// Renderers only ever talk to a Surface. DisplayList is the retained
// implementation: it records primitives between Clear and Present and
// publishes them as a frame, which game.Painter replays onto an ebiten image on
// every toolkit draw.
package canvas

import "image/color"

// Surface is the set of primitives a clock face may use.
type Surface interface {
	// Clear discards everything drawn since the last Present.
	Clear()
	Line(x0, y0, x1, y1 float64, clr color.Color)
	// Text draws s centred on (x, y). opacity is passed through unchanged;
	// implementations clamp it to [0, 1].
	Text(x, y float64, s string, size float64, clr color.Color, opacity float64)
	// Oval outlines the ellipse inscribed in the box (x0, y0)-(x1, y1).
	Oval(x0, y0, x1, y1 float64, clr color.Color)
	Rect(x0, y0, x1, y1 float64, clr color.Color)
	// Present publishes the current drawing as the visible frame.
	Present()
}

var (
	Black = color.RGBA{A: 0xff}
	Gray  = color.RGBA{R: 0xbe, G: 0xbe, B: 0xbe, A: 0xff}
	Blue  = color.RGBA{B: 0xff, A: 0xff}
	Red   = color.RGBA{R: 0xff, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
