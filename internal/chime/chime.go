// Package chime strikes the hour through the speaker, sounding the tonic of
// the hour's key once per hour on a twelve-hour dial.
package chime

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/fifths-clock/internal/fifths"
)

const (
	SampleRate = beep.SampleRate(44100)

	strikeLength = 600 * time.Millisecond
	strikeGap    = 250 * time.Millisecond
	volume       = 0.3
	decay        = 4.0
)

// Player plays a stream asynchronously.
type Player interface {
	Play(s beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }

type Chime struct {
	rate   beep.SampleRate
	player Player
	log    *slog.Logger
}

// New initialises the speaker and returns a chime that plays through it.
func New(log *slog.Logger) (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return NewWithPlayer(SampleRate, speakerPlayer{}, log), nil
}

func NewWithPlayer(rate beep.SampleRate, player Player, log *slog.Logger) *Chime {
	return &Chime{rate: rate, player: player, log: log}
}

// Strikes is the number of strikes for hour: 12 at midnight and noon,
// otherwise hour mod 12.
func Strikes(hour int) int {
	if n := hour % 12; n != 0 {
		return n
	}
	return 12
}

// Strike plays the chime for hour. It returns once playback is queued.
func (c *Chime) Strike(hour int) error {
	seq, err := c.Sequence(hour)
	if err != nil {
		return err
	}
	key := fifths.HourMajor[hour]
	c.log.Info("striking the hour", "hour", hour, "key", key, "strikes", Strikes(hour))
	c.player.Play(beep.Seq(seq, beep.Callback(func() {
		c.log.Debug("chime finished", "hour", hour)
	})))
	return nil
}

// Sequence builds the strikes for hour as a finite stream.
func (c *Chime) Sequence(hour int) (beep.Streamer, error) {
	if hour < 0 || hour >= len(fifths.HourMajor) {
		return nil, fmt.Errorf("hour %d must be somewhere from 0 through 23", hour)
	}
	key := fifths.HourMajor[hour]
	hz, ok := fifths.Frequency(key)
	if !ok {
		return nil, fmt.Errorf("no pitch for key %q", key)
	}

	n := Strikes(hour)
	parts := make([]beep.Streamer, 0, 2*n)
	for i := 0; i < n; i++ {
		parts = append(parts,
			beep.Take(c.rate.N(strikeLength), Tone(c.rate, hz)),
			beep.Silence(c.rate.N(strikeGap)),
		)
	}
	return beep.Seq(parts...), nil
}

// Tone is an endless sine at hz with an exponential decay, like a struck bell.
func Tone(rate beep.SampleRate, hz float64) beep.Streamer {
	step := 1 / float64(rate)
	var t float64
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := volume * math.Exp(-decay*t) * math.Sin(2*math.Pi*hz*t)
			samples[i][0] = v
			samples[i][1] = v
			t += step
		}
		return len(samples), true
	})
}
