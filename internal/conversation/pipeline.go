// Package conversation sequences signal decoding, translation and
// speech synthesis into conversation turns, and persists each exchange.
package conversation

import (
	"log"

	"neurolink-speak/internal/model"
	"neurolink-speak/internal/signal"
	"neurolink-speak/internal/translate"
)

// FallbackTranscription is shown when the transcription source yields
// nothing for an incoming exchange.
const FallbackTranscription = "Sorry, I couldn't understand that."

// SignalSource produces decoded phrases from (mocked) EEG/EMG signals.
type SignalSource interface {
	GenerateReading(kind signal.Kind, durationSeconds int) signal.Reading
}

// Transcriber produces text from audio bytes. The bool is false when
// no transcription could be produced.
type Transcriber interface {
	Transcribe(audio []byte) (string, bool)
}

// Translator maps text between languages, resolving every failure to
// a passthrough result.
type Translator interface {
	Translate(text, sourceLang, targetLang string) translate.Result
}

// Synthesizer renders text to audio bytes; nil means no audio.
type Synthesizer interface {
	Synthesize(text, voice, language string) []byte
}

// Store appends durable log entries.
type Store interface {
	Append(userID uint, direction, originalText, translatedText, audioPath string) error
}

// Pipeline sequences the collaborators for both conversation
// directions. All collaborators are injected; the pipeline holds no
// hidden shared state of its own.
type Pipeline struct {
	Signals    SignalSource
	Speech     Transcriber
	Translator Translator
	Synth      Synthesizer
	Logs       Store
	// BaseLanguage is the language manual text entry is assumed to be
	// written in before any translation.
	BaseLanguage string
	// SaveAudio writes an audio artifact and returns its reference.
	// Optional: when nil, log entries carry no audio reference.
	SaveAudio func(userID uint, direction string, sequence int, audio []byte) (string, error)
	// SignalKind and SignalSeconds select the trace the signal source
	// produces for outgoing turns.
	SignalKind    signal.Kind
	SignalSeconds int
}

// NewPipeline wires a pipeline with the standard signal window.
func NewPipeline(signals SignalSource, speech Transcriber, translator Translator, synth Synthesizer, logs Store, baseLanguage string) *Pipeline {
	if baseLanguage == "" {
		baseLanguage = "en"
	}
	return &Pipeline{
		Signals:       signals,
		Speech:        speech,
		Translator:    translator,
		Synth:         synth,
		Logs:          logs,
		BaseLanguage:  baseLanguage,
		SignalKind:    signal.KindEEG,
		SignalSeconds: 10,
	}
}

// ProduceOutgoingTurn decodes a phrase from the signal source,
// translates it to the user's target language and synthesizes audio.
// The turn is always produced; translation and synthesis degrade to
// passthrough text and absent audio.
func (p *Pipeline) ProduceOutgoingTurn(sess *Session, user *model.User) Turn {
	reading := p.Signals.GenerateReading(p.SignalKind, p.SignalSeconds)

	res := p.Translator.Translate(reading.Phrase, user.NativeLanguage, user.TargetLanguage)
	audio := p.Synth.Synthesize(res.Text, user.VoiceType, user.TargetLanguage)

	turn := sess.append(Turn{
		Sender:        SenderSelf,
		Original:      reading.Phrase,
		Translated:    res.Text,
		Confidence:    reading.Confidence,
		HasConfidence: true,
		Audio:         audio,
		Note:          res.Note,
	})

	p.record(user.ID, model.DirectionOutgoing, reading.Phrase, res.Text, turn.Sequence, audio)
	return turn
}

// ProduceIncomingTurn transcribes partner audio, translates it to the
// user's native language and synthesizes audio for playback. An empty
// transcription falls back to a fixed "not understood" phrase so the
// turn is still produced.
func (p *Pipeline) ProduceIncomingTurn(sess *Session, user *model.User, audioBytes []byte) Turn {
	text, ok := p.Speech.Transcribe(audioBytes)
	if !ok || text == "" {
		text = FallbackTranscription
	}

	res := p.Translator.Translate(text, user.TargetLanguage, user.NativeLanguage)
	audio := p.Synth.Synthesize(res.Text, user.VoiceType, user.NativeLanguage)

	turn := sess.append(Turn{
		Sender:     SenderPartner,
		Original:   text,
		Translated: res.Text,
		Audio:      audio,
		Note:       res.Note,
	})

	p.record(user.ID, model.DirectionIncoming, text, res.Text, turn.Sequence, audio)
	return turn
}

// ProduceManualTurn handles text the user typed by hand. Manual input
// is assumed to be in the base language, so it is translated twice:
// base to native, then native to target. Signal-decoded phrases are
// already staged in the native language and skip the first hop.
func (p *Pipeline) ProduceManualTurn(sess *Session, user *model.User, rawText string) Turn {
	native := p.Translator.Translate(rawText, p.BaseLanguage, user.NativeLanguage)
	final := p.Translator.Translate(native.Text, user.NativeLanguage, user.TargetLanguage)

	audio := p.Synth.Synthesize(final.Text, user.VoiceType, user.TargetLanguage)

	note := native.Note
	if note == "" {
		note = final.Note
	}

	turn := sess.append(Turn{
		Sender:        SenderSelf,
		Original:      native.Text,
		Translated:    final.Text,
		Confidence:    1.0,
		HasConfidence: true,
		Audio:         audio,
		Note:          note,
	})

	// The durable record keeps the text as typed, while the session
	// turn shows it staged in the native language.
	p.record(user.ID, model.DirectionOutgoing, rawText, final.Text, turn.Sequence, audio)
	return turn
}

// record persists one exchange best-effort. A failure is logged and
// never rolls back the in-memory turn.
func (p *Pipeline) record(userID uint, direction, originalText, translatedText string, sequence int, audio []byte) {
	var audioPath string
	if p.SaveAudio != nil && len(audio) > 0 {
		path, err := p.SaveAudio(userID, direction, sequence, audio)
		if err != nil {
			log.Printf("Failed to save audio artifact for user %d: %v", userID, err)
		} else {
			audioPath = path
		}
	}

	if p.Logs == nil {
		return
	}
	if err := p.Logs.Append(userID, direction, originalText, translatedText, audioPath); err != nil {
		log.Printf("Failed to save conversation log for user %d: %v", userID, err)
	}
}
