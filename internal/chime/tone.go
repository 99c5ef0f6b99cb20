package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// strikeDuration is the length of one bell strike.
	strikeDuration = 600 * time.Millisecond
	// strikeAttack is the fade-in of a strike.
	strikeAttack = 5 * time.Millisecond
	// strikeGap is the silence between strikes.
	strikeGap = 150 * time.Millisecond
	// strikes is the number of strikes in the chime.
	strikes = 3
	// fundamentalHz is A5.
	fundamentalHz = 880.0
	// overtoneHz is one octave above the fundamental.
	overtoneHz = 1760.0
)

// sine generates a sine wave of a fixed length.
type sine struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	length   int
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) *sine {
	return &sine{
		freq:   freq,
		rate:   rate,
		length: rate.N(d),
	}
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}

		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}

	return len(samples), true
}

func (s *sine) Err() error { return nil }

// decay shapes a streamer with a linear attack and a linear release that
// reaches silence at the end of the strike.
type decay struct {
	streamer beep.Streamer
	attack   int
	total    int
	position int
}

func newDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) *decay {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(d),
	}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)

	for i := range n {
		gain := 1.0

		switch {
		case d.position >= d.total:
			gain = 0
		case d.position < d.attack:
			gain = float64(d.position) / float64(d.attack)
		default:
			gain = float64(d.total-d.position) / float64(d.total-d.attack)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}

	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales s by a linear volume in 0..1.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// strike is one bell hit: fundamental plus a quieter octave overtone.
func strike(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		withVolume(newDecay(newSine(fundamentalHz, strikeDuration, rate), strikeDuration, strikeAttack, rate), 0.7),
		withVolume(newDecay(newSine(overtoneHz, strikeDuration, rate), strikeDuration/2, strikeAttack, rate), 0.3),
	)
}

// Sound returns the complete chime at the given rate and volume.
func Sound(rate beep.SampleRate, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, 2*strikes-1)

	for i := range strikes {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(strikeGap)))
		}

		parts = append(parts, strike(rate))
	}

	return withVolume(beep.Seq(parts...), volume)
}

// Duration returns how long Sound plays.
func Duration() time.Duration {
	return strikes*strikeDuration + (strikes-1)*strikeGap
}
