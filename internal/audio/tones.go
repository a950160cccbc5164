package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"policy-hero/internal/event"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Tone is a short synthesised cue: a frequency sweep with a linear fade out.
type Tone struct {
	From, To float64 // Hz
	Duration time.Duration
	Wave     Wave
	Volume   float64 // linear, 0..1
}

// blip streams one Tone.
type blip struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func newBlip(t Tone, rate beep.SampleRate) *blip {
	return &blip{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		progress := float64(b.pos) / float64(b.total)
		freq := b.tone.From + (b.tone.To-b.tone.From)*progress

		var v float64
		switch b.tone.Wave {
		case WaveSquare:
			v = 1
			if b.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 1 - 4*math.Abs(b.phase-0.5)
		default:
			v = math.Sin(2 * math.Pi * b.phase)
		}
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v

		b.phase += freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// Streamer renders the tone at the given rate with its volume applied.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	s := newBlip(t, rate)
	if t.Volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(t.Volume)}
}

// ToneFor maps a gameplay event to its cue. ok is false for silent events.
func ToneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.ShotFired:
		return Tone{From: 1200, To: 700, Duration: 60 * time.Millisecond, Wave: WaveSquare, Volume: 0.25}, true
	case event.ThiefHit:
		return Tone{From: 500, To: 400, Duration: 80 * time.Millisecond, Wave: WaveTriangle, Volume: 0.4}, true
	case event.ThiefKilled:
		return Tone{From: 300, To: 900, Duration: 150 * time.Millisecond, Wave: WaveTriangle, Volume: 0.5}, true
	case event.HouseDamaged:
		return Tone{From: 120, To: 90, Duration: 90 * time.Millisecond, Wave: WaveSquare, Volume: 0.3}, true
	case event.Interacted:
		return Tone{From: 660, To: 880, Duration: 120 * time.Millisecond, Wave: WaveSine, Volume: 0.5}, true
	case event.WaveStarted:
		return Tone{From: 440, To: 440, Duration: 200 * time.Millisecond, Wave: WaveSquare, Volume: 0.3}, true
	case event.PayoutTriggered:
		return Tone{From: 523, To: 1046, Duration: 600 * time.Millisecond, Wave: WaveSine, Volume: 0.6}, true
	case event.QuizAnswered:
		if a, ok := e.Data.(event.Answer); ok && a.Correct {
			return Tone{From: 880, To: 1320, Duration: 200 * time.Millisecond, Wave: WaveSine, Volume: 0.5}, true
		}
		return Tone{From: 220, To: 110, Duration: 250 * time.Millisecond, Wave: WaveSquare, Volume: 0.4}, true
	}
	return Tone{}, false
}
