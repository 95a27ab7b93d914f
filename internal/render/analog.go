package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
	"github.com/iburimskiy/fifths-clock/internal/fifths"
)

type ring struct {
	radius float64
	labels *[fifths.Positions]string
	size   float64
	color  color.Color
}

var rings = []ring{
	{config.SharpsFlatsRing, &fifths.SharpsFlats, config.SharpsFlatsSize, canvas.Gray},
	{config.MajorRing, &fifths.Major, config.MajorSize, canvas.Black},
	{config.MinorRing, &fifths.Minor, config.MinorSize, canvas.Gray},
	{config.RomanRing, &fifths.Roman, config.RomanSize, canvas.Blue},
}

// positionAngle is the angle of circle position ii.
func positionAngle(ii int) float64 {
	return float64(ii) / fifths.Positions * 2 * math.Pi
}

// HourAngle puts 12 o'clock at π/2 and advances clockwise, with the minute
// moving the hand between hour marks.
func HourAngle(hour, minute int) float64 {
	return math.Pi/2 - float64(hour)/12*2*math.Pi - float64(minute)/(60*12)*2*math.Pi
}

func MinuteAngle(minute int) float64 {
	return math.Pi/2 - float64(minute)/60*2*math.Pi
}

func SecondAngle(second int) float64 {
	return math.Pi/2 - float64(second)/60*2*math.Pi
}

// Analog draws the dial face: guides, the four label rings, then the hour,
// minute and second hands.
func Analog(s canvas.Surface, t clock.TimeSample) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.Clear()
	s.Oval(0, 0, config.WindowWidth, config.WindowHeight, canvas.Black)

	for ii := 0; ii < fifths.Positions; ii++ {
		theta := positionAngle(ii)
		x0, y0 := polar(config.GuideInner, theta)
		x1, y1 := polar(config.GuideOuter, theta)
		s.Line(x0, y0, x1, y1, canvas.Gray)
	}

	for _, r := range rings {
		for ii, label := range r.labels {
			x, y := polar(r.radius, positionAngle(ii))
			s.Text(x, y, label, r.size, r.color, 1)
		}
	}

	hand(s, config.HourHandLength, HourAngle(t.Hour, t.Minute), canvas.Black)
	hand(s, config.MinuteHandLength, MinuteAngle(t.Minute), canvas.Black)
	hand(s, config.SecondHandLength, SecondAngle(t.Second), canvas.Red)

	s.Present()
	return nil
}

func hand(s canvas.Surface, length, theta float64, clr color.Color) {
	x, y := polar(length, theta)
	s.Line(config.CenterX, config.CenterY, x, y, clr)
}
