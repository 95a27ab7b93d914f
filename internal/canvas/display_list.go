package canvas

import (
	"image/color"
	"sync"
)

type OpKind int

const (
	OpLine OpKind = iota
	OpText
	OpOval
	OpRect
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpOval:
		return "oval"
	case OpRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive. Lines, ovals and rects use the two corner
// points. Text uses (X0, Y0) as its centre.
type Op struct {
	Kind    OpKind
	X0, Y0  float64
	X1, Y1  float64
	Text    string
	Size    float64
	Color   color.Color
	Opacity float64
}

// DisplayList records primitives and keeps the last presented frame. Writes
// come from the update loop and reads from the draw loop, so the published
// frame is guarded.
type DisplayList struct {
	pending []Op

	mu       sync.RWMutex
	frame    []Op
	presents int
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Clear() {
	d.pending = d.pending[:0]
}

func (d *DisplayList) Line(x0, y0, x1, y1 float64, clr color.Color) {
	d.pending = append(d.pending, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr, Opacity: 1})
}

func (d *DisplayList) Text(x, y float64, s string, size float64, clr color.Color, opacity float64) {
	d.pending = append(d.pending, Op{Kind: OpText, X0: x, Y0: y, Text: s, Size: size, Color: clr, Opacity: opacity})
}

func (d *DisplayList) Oval(x0, y0, x1, y1 float64, clr color.Color) {
	d.pending = append(d.pending, Op{Kind: OpOval, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr, Opacity: 1})
}

func (d *DisplayList) Rect(x0, y0, x1, y1 float64, clr color.Color) {
	d.pending = append(d.pending, Op{Kind: OpRect, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr, Opacity: 1})
}

func (d *DisplayList) Present() {
	frame := make([]Op, len(d.pending))
	copy(frame, d.pending)

	d.mu.Lock()
	d.frame = frame
	d.presents++
	d.mu.Unlock()
}

// Frame returns a copy of the last presented frame.
func (d *DisplayList) Frame() []Op {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Op, len(d.frame))
	copy(out, d.frame)
	return out
}

// Presents reports how many frames have been published.
func (d *DisplayList) Presents() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.presents
}

// Pending reports how many primitives have been drawn since the last Clear.
func (d *DisplayList) Pending() int {
	return len(d.pending)
}
