// Package asr simulates automatic speech recognition.
//
// A real deployment would run Whisper or a comparable model; the mock
// picks one of a fixed set of transcriptions so the rest of the
// pipeline can be exercised without model weights.
package asr

import "math/rand"

// transcriptions are the stock results the mock recognizer returns.
var transcriptions = []string{
	"Hello, how are you today?",
	"I would like to order some food.",
	"Can you help me with this task?",
	"The weather is nice today.",
	"I need to go to the store.",
	"What time is it?",
	"Thank you for your assistance.",
	"I don't understand what you mean.",
	"Could you please repeat that?",
	"I'm feeling tired right now.",
	"This is a sample transcription.",
	"I enjoy listening to music.",
	"Where is the nearest hospital?",
	"I need some water please.",
	"How much does this cost?",
}

// Transcriber converts audio bytes to text.
type Transcriber struct {
	rng *rand.Rand
}

// NewTranscriber creates a transcriber seeded by rng. A nil rng falls
// back to the shared global source.
func NewTranscriber(rng *rand.Rand) *Transcriber {
	return &Transcriber{rng: rng}
}

// Transcriptions returns the stock transcription set.
func Transcriptions() []string {
	out := make([]string, len(transcriptions))
	copy(out, transcriptions)
	return out
}

// Transcribe returns the transcription for audio. The second return is
// false when no transcription could be produced; callers fall back to
// their own "not understood" text in that case.
func (t *Transcriber) Transcribe(audio []byte) (string, bool) {
	if len(audio) == 0 {
		return "", false
	}

	if t.rng != nil {
		return transcriptions[t.rng.Intn(len(transcriptions))], true
	}
	return transcriptions[rand.Intn(len(transcriptions))], true
}
