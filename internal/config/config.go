package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	WindowWidth  = 900
	WindowHeight = 900

	CenterX = WindowWidth / 2
	CenterY = WindowHeight / 2

	// Seconds between redraws.
	TickInterval = time.Second

	// Analog dial radii
	GuideInner       = 425
	GuideOuter       = 450
	SharpsFlatsRing  = 400
	MajorRing        = 350
	MinorRing        = 250
	RomanRing        = 150
	HourHandLength   = 200
	MinuteHandLength = 400
	SecondHandLength = 400

	// Digital face frame insets
	FrameMarginX = 50
	FrameMarginY = 250

	// Font sizes
	SharpsFlatsSize = 18
	MajorSize       = 36
	MinorSize       = 24
	RomanSize       = 18
	GlyphSize       = 128

	WindowTitle = "Circle of fifths clock"
)

// ErrInvalidRenderMode is returned for any mode other than "analog" or "digital".
var ErrInvalidRenderMode = errors.New("render must be 'analog' or 'digital'")

// RenderMode selects the clock face. It is fixed for the life of the process.
type RenderMode int

const (
	Analog RenderMode = iota
	Digital
)

func (m RenderMode) String() string {
	switch m {
	case Analog:
		return "analog"
	case Digital:
		return "digital"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

func (m RenderMode) Valid() bool {
	return m == Analog || m == Digital
}

// ParseRenderMode accepts exactly "analog" or "digital".
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "analog":
		return Analog, nil
	case "digital":
		return Digital, nil
	default:
		return 0, fmt.Errorf("invalid render mode %q: %w", s, ErrInvalidRenderMode)
	}
}
