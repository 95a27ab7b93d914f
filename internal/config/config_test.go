package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderMode(t *testing.T) {
	tests := []struct {
		in   string
		want RenderMode
	}{
		{"analog", Analog},
		{"digital", Digital},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRenderMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseRenderMode_Invalid(t *testing.T) {
	for _, in := range []string{"3d", "", "Analog", " digital", "analog "} {
		_, err := ParseRenderMode(in)
		assert.ErrorIs(t, err, ErrInvalidRenderMode, "input %q", in)
	}
}

func TestRenderModeValid(t *testing.T) {
	assert.True(t, Analog.Valid())
	assert.True(t, Digital.Valid())
	assert.False(t, RenderMode(7).Valid())
	assert.Equal(t, "RenderMode(7)", RenderMode(7).String())
}
