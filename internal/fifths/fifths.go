// Package fifths holds the circle-of-fifths lookup tables used by both clock
// faces.
//
// The analog tables are indexed by circle position: position 0 sits at the
// 3 o'clock angle and positions advance counter-clockwise, so C major lands
// at 12 o'clock. The digital tables are indexed by hour and by five-minute
// slot.
package fifths

import "math"

// Positions is the number of slots around the circle.
const Positions = 12

var (
	SharpsFlats = [Positions]string{"3#", "2#", "1#", "", "1b", "2b", "3b", "4b", "5b", "6#", "5#", "4#"}
	Major       = [Positions]string{"A", "D", "G", "C", "F", "Bb", "Eb", "Ab", "Db", "F#", "B", "E"}
	Minor       = [Positions]string{"F#", "B", "E", "A", "D", "G", "C", "F", "Bb", "Eb", "G#", "C#"}
	Roman       = [Positions]string{"vi", "ii", "V", "I", "IV", "", "", "", "", "", "vii", "iii"}
)

var hourCycle = [Positions]string{"C", "G", "D", "A", "E", "B", "F#", "Db", "Ab", "Eb", "Bb", "F"}

// HourMajor maps hour of day 0-23 to a major key. It repeats every 12 hours.
var HourMajor = func() [2 * Positions]string {
	var t [2 * Positions]string
	copy(t[:Positions], hourCycle[:])
	copy(t[Positions:], hourCycle[:])
	return t
}()

// MinuteMinor maps floor or ceil of minute/5, wrapped mod 12, to a minor key.
var MinuteMinor = [Positions]string{"A", "E", "B", "F#", "C#", "G#", "Eb", "Bb", "F", "C", "G", "D"}

// semitones above C for every spelling used in the tables.
var semitones = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3, "E": 4, "F": 5,
	"F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11,
}

// Frequency returns the equal-tempered pitch in Hz of key's tonic in the
// octave starting at middle C (A4 = 440 Hz). ok is false for unknown names.
func Frequency(key string) (hz float64, ok bool) {
	n, ok := semitones[key]
	if !ok {
		return 0, false
	}
	return 440 * math.Pow(2, float64(n-9)/12), true
}
