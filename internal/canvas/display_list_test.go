package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayList_PresentPublishes(t *testing.T) {
	d := NewDisplayList()
	d.Clear()
	d.Line(0, 0, 10, 10, Black)
	d.Text(5, 5, "C", 36, Black, 0.5)

	assert.Empty(t, d.Frame(), "nothing is visible before Present")
	assert.Equal(t, 2, d.Pending())

	d.Present()
	frame := d.Frame()
	require.Len(t, frame, 2)
	assert.Equal(t, OpLine, frame[0].Kind)
	assert.Equal(t, OpText, frame[1].Kind)
	assert.Equal(t, "C", frame[1].Text)
	assert.Equal(t, 0.5, frame[1].Opacity)
	assert.Equal(t, 1, d.Presents())
}

func TestDisplayList_ClearReplacesFrame(t *testing.T) {
	d := NewDisplayList()
	d.Oval(0, 0, 900, 900, Black)
	d.Present()

	d.Clear()
	d.Rect(50, 250, 850, 650, Black)
	assert.Equal(t, 1, d.Pending())

	// The previous frame stays visible until the next Present.
	require.Len(t, d.Frame(), 1)
	assert.Equal(t, OpOval, d.Frame()[0].Kind)

	d.Present()
	require.Len(t, d.Frame(), 1)
	assert.Equal(t, OpRect, d.Frame()[0].Kind)
	assert.Equal(t, 2, d.Presents())
}

func TestDisplayList_FrameIsCopy(t *testing.T) {
	d := NewDisplayList()
	d.Text(1, 1, "A", 12, Gray, 1)
	d.Present()

	f := d.Frame()
	f[0].Text = "mutated"
	assert.Equal(t, "A", d.Frame()[0].Text)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "line", OpLine.String())
	assert.Equal(t, "text", OpText.String())
	assert.Equal(t, "oval", OpOval.String())
	assert.Equal(t, "rect", OpRect.String())
	assert.Equal(t, "unknown", OpKind(9).String())
}
