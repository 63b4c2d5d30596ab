// Package synth generates the raw waveforms for the feedback sounds.
// Everything here is pure: a Spec goes in, a float64 sample buffer comes
// out. Quantization and file I/O live in internal/wav.
package synth

import (
	"math"
)

// SampleRate is fixed for every generated sound (CD-quality mono).
const SampleRate = 44100

// Amplitude is the final scale applied to every buffer.
// Leaves headroom so 16-bit quantization never clips.
const Amplitude = 0.7

// Spec describes one sound to synthesize.
//
// A single frequency produces a pure sine tone. Multiple frequencies
// produce a sequence: the buffer is split into contiguous segments, one
// per frequency, each a sine starting at phase 0. The phase jump at each
// segment boundary is intentional - it gives the ascending/descending
// cues their staccato character.
type Spec struct {
	Frequencies []float64 // Hz, all > 0
	Duration    float64   // seconds, > 0
	FadeIn      float64   // seconds, >= 0
	FadeOut     float64   // seconds, >= 0
}

// Tone builds a Spec with the default fades (10ms in, 50ms out).
func Tone(duration float64, frequencies ...float64) Spec {
	return Spec{
		Frequencies: frequencies,
		Duration:    duration,
		FadeIn:      0.01,
		FadeOut:     0.05,
	}
}

// Synthesize renders the spec into a mono sample buffer at SampleRate.
// The buffer has exactly round(Duration × SampleRate) samples, every
// value within [-Amplitude, Amplitude].
//
// Preconditions (not validated here; the soundset loader rejects bad
// manifests): frequencies positive, duration positive, fades
// non-negative with FadeIn+FadeOut <= Duration.
func Synthesize(spec Spec) []float64 {
	samples := int(math.Round(spec.Duration * SampleRate))
	if samples < 0 {
		samples = 0
	}
	buf := make([]float64, samples)

	switch len(spec.Frequencies) {
	case 0:
		// Silence; nothing to render.
	case 1:
		sine(buf, spec.Frequencies[0])
	default:
		// One contiguous segment per frequency. The first L-1 segments
		// get floor(samples/L); the last absorbs the remainder so the
		// buffer is covered with no gap or overlap.
		segLen := samples / len(spec.Frequencies)
		for i, freq := range spec.Frequencies {
			start := i * segLen
			end := start + segLen
			if i == len(spec.Frequencies)-1 {
				end = samples
			}
			sine(buf[start:end], freq)
		}
	}

	// Fades run across the whole buffer, not per segment.
	fadeIn(buf, int(spec.FadeIn*SampleRate))
	fadeOut(buf, int(spec.FadeOut*SampleRate))

	for i := range buf {
		buf[i] *= Amplitude
	}
	return buf
}

// sine fills dst with sin(2πft), phase 0 at dst[0].
func sine(dst []float64, freq float64) {
	for i := range dst {
		t := float64(i) / SampleRate
		dst[i] = math.Sin(2 * math.Pi * freq * t)
	}
}

// fadeIn ramps the first n samples linearly 0→1.
// dst[0] is silenced; dst[n-1] passes unchanged.
func fadeIn(dst []float64, n int) {
	if n > len(dst) {
		n = len(dst)
	}
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		dst[i] *= float64(i) / float64(n-1)
	}
}

// fadeOut ramps the last n samples linearly 1→0.
func fadeOut(dst []float64, n int) {
	if n > len(dst) {
		n = len(dst)
	}
	if n < 2 {
		return
	}
	base := len(dst) - n
	for i := 0; i < n; i++ {
		dst[base+i] *= 1 - float64(i)/float64(n-1)
	}
}
