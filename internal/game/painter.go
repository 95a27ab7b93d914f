package game

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
)

const (
	strokeWidth  = 1.5
	ovalSegments = 120
)

// Painter replays presented frames onto an ebiten image.
type Painter struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewPainter() (*Painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &Painter{
		source: src,
		faces:  map[float64]*text.GoTextFace{},
	}, nil
}

// Paint fills dst with white and draws ops in order.
func (p *Painter) Paint(dst *ebiten.Image, ops []canvas.Op) {
	dst.Fill(canvas.White)
	for _, op := range ops {
		switch op.Kind {
		case canvas.OpLine:
			vector.StrokeLine(dst, float32(op.X0), float32(op.Y0), float32(op.X1), float32(op.Y1), strokeWidth, op.Color, true)
		case canvas.OpRect:
			x, y := math.Min(op.X0, op.X1), math.Min(op.Y0, op.Y1)
			w, h := math.Abs(op.X1-op.X0), math.Abs(op.Y1-op.Y0)
			vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), strokeWidth, op.Color, true)
		case canvas.OpOval:
			p.strokeOval(dst, op)
		case canvas.OpText:
			p.drawText(dst, op)
		}
	}
}

func (p *Painter) strokeOval(dst *ebiten.Image, op canvas.Op) {
	cx, cy := (op.X0+op.X1)/2, (op.Y0+op.Y1)/2
	rx, ry := math.Abs(op.X1-op.X0)/2, math.Abs(op.Y1-op.Y0)/2
	if rx == ry {
		// Inset by half the stroke so a full-window circle stays visible.
		r := rx - strokeWidth/2
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), strokeWidth, op.Color, true)
		return
	}

	for i := 0; i < ovalSegments; i++ {
		a0 := float64(i) / ovalSegments * 2 * math.Pi
		a1 := float64(i+1) / ovalSegments * 2 * math.Pi
		x0, y0 := cx+rx*math.Cos(a0), cy+ry*math.Sin(a0)
		x1, y1 := cx+rx*math.Cos(a1), cy+ry*math.Sin(a1)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, op.Color, true)
	}
}

func (p *Painter) drawText(dst *ebiten.Image, op canvas.Op) {
	alpha := clamp01(op.Opacity)
	if op.Text == "" || alpha == 0 {
		return
	}
	face := p.face(op.Size)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(op.X0, op.Y0)
	opts.ColorScale.ScaleWithColor(op.Color)
	opts.ColorScale.ScaleAlpha(float32(alpha))
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	text.Draw(dst, op.Text, face, opts)
}

func (p *Painter) face(size float64) *text.GoTextFace {
	f, ok := p.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: p.source, Size: size}
		p.faces[size] = f
	}
	return f
}
