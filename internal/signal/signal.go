// Package signal simulates EEG/EMG signal acquisition and decoding.
//
// A real deployment would feed electrode data through a trained decoder;
// here the decoder synthesizes a plausible trace and maps simple features
// of it onto a fixed set of assistive phrases.
package signal

import (
	"math"
	"math/rand"
)

// Kind selects the simulated signal type.
type Kind string

const (
	KindEEG Kind = "eeg"
	KindEMG Kind = "emg"
)

// Sampling rates in Hz.
const (
	eegSampleRate = 256
	emgSampleRate = 1000
)

// Reading is one decoded signal window.
type Reading struct {
	Phrase     string
	Confidence float64
	Samples    []float64
}

// phrases are the assistive phrases the mock decoder can produce.
var phrases = []string{
	"I need help",
	"I am hungry",
	"I am thirsty",
	"I am in pain",
	"I need to use the restroom",
	"Yes",
	"No",
	"Please",
	"Thank you",
	"Hello",
	"Goodbye",
	"I love you",
	"I am tired",
	"I am happy",
	"I am sad",
	"I am uncomfortable",
	"I am cold",
	"I am hot",
	"I am scared",
	"I am confused",
}

// Decoder produces mock signal readings.
type Decoder struct {
	rng *rand.Rand
	// baseConfidence holds a stable per-phrase confidence level,
	// jittered per reading.
	baseConfidence map[string]float64
}

// NewDecoder creates a decoder seeded by rng. A nil rng falls back to
// the shared global source.
func NewDecoder(rng *rand.Rand) *Decoder {
	d := &Decoder{rng: rng, baseConfidence: make(map[string]float64, len(phrases))}
	for _, phrase := range phrases {
		d.baseConfidence[phrase] = 0.7 + d.random()*0.25
	}
	return d
}

func (d *Decoder) random() float64 {
	if d.rng != nil {
		return d.rng.Float64()
	}
	return rand.Float64()
}

func (d *Decoder) randomInt(n int) int {
	if d.rng != nil {
		return d.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Phrases returns the phrases the decoder can produce.
func Phrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}

// GenerateSignal synthesizes a mock trace of the given kind and duration.
// EEG traces mix alpha (8 Hz), beta (15 Hz) and theta (4 Hz) components
// with noise; EMG traces are noise with muscle activation bursts.
func (d *Decoder) GenerateSignal(kind Kind, durationSeconds int) []float64 {
	if durationSeconds <= 0 {
		durationSeconds = 1
	}

	switch kind {
	case KindEMG:
		n := emgSampleRate * durationSeconds
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = d.gauss() * 0.5
		}
		// Muscle activation bursts
		for b := 0; b < 5; b++ {
			burst := 50
			if n <= burst {
				break
			}
			start := d.randomInt(n - burst)
			amplitude := 1 + d.random()*2
			for i := 0; i < burst; i++ {
				samples[start+i] += math.Sin(2*math.Pi*float64(i)/float64(burst)) * amplitude
			}
		}
		return samples
	default:
		n := eegSampleRate * durationSeconds
		samples := make([]float64, n)
		for i := range samples {
			t := float64(i) / eegSampleRate
			samples[i] = math.Sin(2*math.Pi*8*t) +
				0.5*math.Sin(2*math.Pi*15*t) +
				0.3*math.Sin(2*math.Pi*4*t) +
				0.1*d.gauss()
		}
		return samples
	}
}

// DecodeSignal maps a trace onto a phrase with a confidence score.
// The energy, mean and standard deviation of the trace pick the phrase,
// so the same trace always decodes to the same phrase.
func (d *Decoder) DecodeSignal(samples []float64) (string, float64) {
	if len(samples) == 0 {
		return phrases[0], 0.1
	}

	var sum, sumSquares float64
	for _, s := range samples {
		sum += s
		sumSquares += s * s
	}
	n := float64(len(samples))
	mean := sum / n
	energy := sumSquares / n

	var variance float64
	for _, s := range samples {
		variance += (s - mean) * (s - mean)
	}
	stddev := math.Sqrt(variance / n)

	featureSum := energy + mean + stddev
	index := int(math.Abs(featureSum)*1000) % len(phrases)

	phrase := phrases[index]
	confidence := d.baseConfidence[phrase] + (d.random()-0.5)*0.2
	confidence = math.Max(0.1, math.Min(0.99, confidence))

	return phrase, confidence
}

// GenerateReading produces a decoded reading from a fresh mock trace.
func (d *Decoder) GenerateReading(kind Kind, durationSeconds int) Reading {
	samples := d.GenerateSignal(kind, durationSeconds)
	phrase, confidence := d.DecodeSignal(samples)
	return Reading{Phrase: phrase, Confidence: confidence, Samples: samples}
}

func (d *Decoder) gauss() float64 {
	if d.rng != nil {
		return d.rng.NormFloat64()
	}
	return rand.NormFloat64()
}
