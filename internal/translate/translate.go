// Package translate maps short phrases between languages.
//
// Language pairs are backed by named translation models loaded through
// an explicit cache. The models here are lexicon mocks standing in for
// the Helsinki-NLP opus-mt checkpoints the real system would run, so
// the pipeline semantics (passthrough rules, warnings, never failing
// the caller) can be exercised without model weights.
package translate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel target values that disable translation.
const (
	TargetNone = "none"
	TargetNo   = "no"
)

// pairModels maps "source-target" language pairs to model names.
var pairModels = map[string]string{
	"en-es": "Helsinki-NLP/opus-mt-en-es",
	"es-en": "Helsinki-NLP/opus-mt-es-en",
	"en-fr": "Helsinki-NLP/opus-mt-en-fr",
	"fr-en": "Helsinki-NLP/opus-mt-fr-en",
	"en-de": "Helsinki-NLP/opus-mt-en-de",
	"de-en": "Helsinki-NLP/opus-mt-de-en",
	"en-it": "Helsinki-NLP/opus-mt-en-it",
	"it-en": "Helsinki-NLP/opus-mt-it-en",
	"en-pt": "Helsinki-NLP/opus-mt-en-pt",
	"pt-en": "Helsinki-NLP/opus-mt-pt-en",
	"en-ru": "Helsinki-NLP/opus-mt-en-ru",
	"ru-en": "Helsinki-NLP/opus-mt-ru-en",
	"en-ar": "Helsinki-NLP/opus-mt-en-ar",
	"ar-en": "Helsinki-NLP/opus-mt-ar-en",
	"en-hi": "Helsinki-NLP/opus-mt-en-hi",
	"hi-en": "Helsinki-NLP/opus-mt-hi-en",
	"en-zh": "Helsinki-NLP/opus-mt-en-zh",
	"zh-en": "Helsinki-NLP/opus-mt-zh-en",
}

// SupportedLanguages returns the language codes users can select.
func SupportedLanguages() []string {
	return []string{"en", "es", "fr", "de", "it", "pt", "ru", "ar", "hi", "zh"}
}

// Model is a loaded translation model handle.
type Model struct {
	Name string
	// lexicon maps lowercased source phrases and words to target text.
	lexicon map[string]string
}

// Translate runs the model over text. Phrases found in the lexicon are
// replaced wholesale; otherwise the text is translated word by word,
// keeping words the lexicon does not cover.
func (m *Model) Translate(text string) string {
	if hit, ok := m.lexicon[strings.ToLower(strings.TrimSpace(text))]; ok {
		return hit
	}

	words := strings.Fields(text)
	for i, word := range words {
		core, prefix, suffix := trimPunct(word)
		if core == "" {
			continue
		}
		if hit, ok := m.lexicon[strings.ToLower(core)]; ok {
			if isCapitalized(core) {
				hit = capitalize(hit)
			}
			words[i] = prefix + hit + suffix
		}
	}
	return strings.Join(words, " ")
}

// Result is the outcome of one translation request. Translate never
// fails: when translation cannot happen, Text carries the input
// unchanged and Note says why.
type Result struct {
	Text       string
	Translated bool
	Note       string
}

// Translator maps text between languages using cached models.
type Translator struct {
	cache *ModelCache
}

// NewTranslator creates a translator with the built-in lexicon models.
func NewTranslator() *Translator {
	return &Translator{cache: NewModelCache(loadLexiconModel)}
}

// NewTranslatorWithLoader creates a translator whose models come from
// loader. Used to exercise load-failure paths.
func NewTranslatorWithLoader(loader func(name string) (*Model, error)) *Translator {
	return &Translator{cache: NewModelCache(loader)}
}

// Translate converts text from sourceLang to targetLang. It never
// returns an error: unsupported pairs, load failures and sentinel
// targets all resolve to identity passthrough, with Note set for the
// recoverable cases worth surfacing.
func (t *Translator) Translate(text, sourceLang, targetLang string) Result {
	if text == "" {
		return Result{Text: ""}
	}

	if targetLang == TargetNone || targetLang == TargetNo {
		return Result{Text: text}
	}

	if sourceLang == targetLang {
		return Result{Text: text}
	}

	pair := sourceLang + "-" + targetLang
	modelName, ok := pairModels[pair]
	if !ok {
		return Result{
			Text: text,
			Note: fmt.Sprintf("translation from %s to %s not supported", sourceLang, targetLang),
		}
	}

	model, err := t.cache.Get(modelName)
	if err != nil {
		return Result{
			Text: text,
			Note: fmt.Sprintf("could not load translation model %s: %v", modelName, err),
		}
	}

	return Result{Text: model.Translate(text), Translated: true}
}

func trimPunct(word string) (core, prefix, suffix string) {
	start := 0
	for start < len(word) {
		r, size := utf8.DecodeRuneInString(word[start:])
		if isWordRune(r) {
			break
		}
		start += size
	}
	end := len(word)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(word[:end])
		if isWordRune(r) {
			break
		}
		end -= size
	}
	return word[start:end], word[:start], word[end:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalize(word string) string {
	for i, r := range word {
		return string(unicode.ToUpper(r)) + word[i+len(string(r)):]
	}
	return word
}
