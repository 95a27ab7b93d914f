package fifths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourMajorRepeats(t *testing.T) {
	assert.Equal(t, "C", HourMajor[0])
	assert.Equal(t, "C", HourMajor[12])
	for h := 0; h < Positions; h++ {
		assert.Equal(t, HourMajor[h], HourMajor[h+Positions], "hour %d", h)
	}
	assert.Equal(t, "F", HourMajor[23])
}

func TestAnalogTablesAlign(t *testing.T) {
	// C major and its relative minor share the empty key signature at 12 o'clock.
	assert.Equal(t, "C", Major[3])
	assert.Equal(t, "A", Minor[3])
	assert.Equal(t, "", SharpsFlats[3])
	assert.Equal(t, "I", Roman[3])
}

func TestFrequency(t *testing.T) {
	hz, ok := Frequency("A")
	require.True(t, ok)
	assert.InDelta(t, 440.0, hz, 1e-9)

	hz, ok = Frequency("C")
	require.True(t, ok)
	assert.InDelta(t, 261.6256, hz, 1e-3)

	sharp, _ := Frequency("F#")
	flat, _ := Frequency("Gb")
	assert.Equal(t, sharp, flat)

	for _, k := range HourMajor {
		_, ok := Frequency(k)
		assert.True(t, ok, "key %q", k)
	}

	_, ok = Frequency("H")
	assert.False(t, ok)
}
