package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a bounded duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a bounded wave generator. Noise ignores freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a gain stage.
// math.Log2(0) is -Inf, so zero volume is mapped to silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue durations
const (
	jumpNote1Dur = 45 * time.Millisecond
	jumpNote2Dur = 70 * time.Millisecond
	landDur      = 70 * time.Millisecond
	crashDur     = 280 * time.Millisecond
)

// JumpCue generates a short two-note rising blip.
func JumpCue(rate beep.SampleRate) beep.Streamer {
	// C5 then G5
	n1 := NewOscillator(523.25, jumpNote1Dur, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, jumpNote1Dur, 3*time.Millisecond, 15*time.Millisecond, rate)

	n2 := NewOscillator(783.99, jumpNote2Dur, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, jumpNote2Dur, 3*time.Millisecond, 40*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}

// JumpCueLength returns the cue's total sample count at the given rate.
func JumpCueLength(rate beep.SampleRate) int {
	return rate.N(jumpNote1Dur) + rate.N(jumpNote2Dur)
}

// LandCue generates a low, short thud.
func LandCue(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(90.0, landDur, WaveSine, rate)
	shaped := NewEnvelope(osc, landDur, 2*time.Millisecond, 50*time.Millisecond, rate)
	return newVolume(shaped, 0.6)
}

// LandCueLength returns the cue's total sample count at the given rate.
func LandCueLength(rate beep.SampleRate) int {
	return rate.N(landDur)
}

// CrashCue generates a noise burst over a low sawtooth rumble.
func CrashCue(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, crashDur, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, crashDur, 2*time.Millisecond, 240*time.Millisecond, rate)

	rumble := NewOscillator(65.0, crashDur, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, crashDur, 2*time.Millisecond, 220*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.35),
		newVolume(rumbleShaped, 0.5),
	)
	return newVolume(mixed, 0.8)
}

// CrashCueLength returns the cue's total sample count at the given rate.
func CrashCueLength(rate beep.SampleRate) int {
	return rate.N(crashDur)
}
