package game

import (
	"fmt"

	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
	"github.com/iburimskiy/fifths-clock/internal/fifths"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatTitle formats the window title as "<title> - HH:MM:SS (<key> major)".
func formatTitle(s clock.TimeSample) string {
	return fmt.Sprintf("%s - %s (%s major)", config.WindowTitle, s, fifths.HourMajor[s.Hour])
}
