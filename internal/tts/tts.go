// Package tts converts text to speech audio.
//
// The synthesizer stands in for a hosted TTS backend: it renders a
// voiced tone sequence into a mono PCM16 WAV buffer whose pacing tracks
// the input text. Callers treat a nil result as "no audio", never as a
// pipeline failure.
package tts

import (
	"math"

	"github.com/abadojack/whatlanggo"
)

const (
	sampleRate   = 22050
	fallbackLang = "en"
	// samplesPerRune gives roughly natural speech pacing (~55ms per rune).
	samplesPerRune = 1212
)

// voicePitch maps a voice preference to a base frequency in Hz.
var voicePitch = map[string]float64{
	"default": 220,
	"male":    130,
	"female":  260,
}

// Synthesizer renders text into audio bytes.
type Synthesizer struct{}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// DetectLanguage guesses the language of text, falling back to "en"
// when detection is unreliable.
func (s *Synthesizer) DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return fallbackLang
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return fallbackLang
	}
	return code
}

// Synthesize converts text to WAV bytes using the given voice
// preference. When language is empty the text's language is detected
// first; the language only steers pacing here but keeps the call shape
// of a real backend. Returns nil when text is empty or rendering
// produces no audio.
func (s *Synthesizer) Synthesize(text, voice, language string) []byte {
	if text == "" {
		return nil
	}

	if language == "" {
		language = s.DetectLanguage(text)
	}

	pitch, ok := voicePitch[voice]
	if !ok {
		pitch = voicePitch["default"]
	}

	samples := renderTone(text, pitch)
	if len(samples) == 0 {
		return nil
	}

	return encodeWAV(samples, sampleRate)
}

// renderTone produces PCM16 samples: one short tone per rune, pitch
// varied by rune value so distinct texts sound distinct, with silence
// gaps at spaces.
func renderTone(text string, basePitch float64) []int16 {
	runeDur := samplesPerRune
	samples := make([]int16, 0, len(text)*runeDur)

	for _, r := range text {
		if r == ' ' {
			samples = append(samples, make([]int16, runeDur/2)...)
			continue
		}

		freq := basePitch * (1 + float64(r%12)/24)
		for i := 0; i < runeDur; i++ {
			t := float64(i) / sampleRate
			// Short attack/decay envelope to avoid clicks
			env := math.Min(1, float64(i)/200) * math.Min(1, float64(runeDur-i)/200)
			v := math.Sin(2*math.Pi*freq*t) * env * 0.4
			samples = append(samples, int16(v*math.MaxInt16))
		}
	}

	return samples
}
