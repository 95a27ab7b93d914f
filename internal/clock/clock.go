// Package clock samples wall-clock time into the hour/minute/second triple
// the renderers consume.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange reports a time field outside its valid range.
var ErrOutOfRange = errors.New("time field out of range")

// Clock provides the current time and can be replaced in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// TimeSample is one reading of the clock. It carries no state beyond its values.
type TimeSample struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeSample validates the fields and returns the sample.
func NewTimeSample(hour, minute, second int) (TimeSample, error) {
	s := TimeSample{Hour: hour, Minute: minute, Second: second}
	if err := s.Validate(); err != nil {
		return TimeSample{}, err
	}
	return s, nil
}

// Sample reads c and truncates it to a TimeSample in c's location.
func Sample(c Clock) TimeSample {
	return FromTime(c.Now())
}

func FromTime(t time.Time) TimeSample {
	return TimeSample{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (s TimeSample) Validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("hour %d must be somewhere from 0 through 23: %w", s.Hour, ErrOutOfRange)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("minute %d must be somewhere from 0 through 59: %w", s.Minute, ErrOutOfRange)
	}
	if s.Second < 0 || s.Second > 59 {
		return fmt.Errorf("second %d must be somewhere from 0 through 59: %w", s.Second, ErrOutOfRange)
	}
	return nil
}

// String formats the sample as HH:MM:SS.
func (s TimeSample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.Hour, s.Minute, s.Second)
}
