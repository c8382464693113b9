package translate

import (
	"errors"
	"testing"
)

func TestTranslatePassthrough(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name   string
		text   string
		source string
		target string
	}{
		{name: "identity when source equals target", text: "I need help", source: "en", target: "en"},
		{name: "none sentinel disables translation", text: "I need help", source: "en", target: "none"},
		{name: "no sentinel disables translation", text: "I need help", source: "en", target: "no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tr.Translate(tt.text, tt.source, tt.target)
			if res.Text != tt.text {
				t.Errorf("expected passthrough %q, got %q", tt.text, res.Text)
			}
			if res.Translated {
				t.Error("passthrough must not be marked translated")
			}
			if res.Note != "" {
				t.Errorf("passthrough should carry no note, got %q", res.Note)
			}
		})
	}
}

func TestTranslateEmptyText(t *testing.T) {
	tr := NewTranslator()

	res := tr.Translate("", "en", "es")
	if res.Text != "" {
		t.Errorf("expected empty output for empty input, got %q", res.Text)
	}
}

func TestTranslateUnsupportedPair(t *testing.T) {
	tr := NewTranslator()

	res := tr.Translate("I need help", "en", "xx")
	if res.Text != "I need help" {
		t.Errorf("unsupported pair must pass through, got %q", res.Text)
	}
	if res.Translated {
		t.Error("unsupported pair must not be marked translated")
	}
	if res.Note == "" {
		t.Error("unsupported pair should carry a warning note")
	}
}

func TestTranslateKnownPhrase(t *testing.T) {
	tr := NewTranslator()

	res := tr.Translate("I need help", "en", "es")
	if res.Text != "Necesito ayuda" {
		t.Errorf("expected %q, got %q", "Necesito ayuda", res.Text)
	}
	if !res.Translated {
		t.Error("expected result to be marked translated")
	}
}

func TestTranslateWordByWord(t *testing.T) {
	tr := NewTranslator()

	res := tr.Translate("Water please!", "en", "es")
	if res.Text != "Agua Por favor!" {
		t.Errorf("unexpected word-level translation: %q", res.Text)
	}
}

func TestTranslateModelLoadFailure(t *testing.T) {
	tr := NewTranslatorWithLoader(func(name string) (*Model, error) {
		return nil, errors.New("weights unavailable")
	})

	res := tr.Translate("I need help", "en", "es")
	if res.Text != "I need help" {
		t.Errorf("load failure must pass through, got %q", res.Text)
	}
	if res.Note == "" {
		t.Error("load failure should carry a warning note")
	}
}

func TestModelCachePopulatesOnce(t *testing.T) {
	loads := 0
	cache := NewModelCache(func(name string) (*Model, error) {
		loads++
		return &Model{Name: name, lexicon: map[string]string{}}, nil
	})

	for i := 0; i < 3; i++ {
		if _, err := cache.Get("Helsinki-NLP/opus-mt-en-es"); err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
	}

	if loads != 1 {
		t.Errorf("expected one load, got %d", loads)
	}
	if cache.Len() != 1 {
		t.Errorf("expected one cached model, got %d", cache.Len())
	}
}

func TestModelCacheRetriesFailedLoads(t *testing.T) {
	calls := 0
	cache := NewModelCache(func(name string) (*Model, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return &Model{Name: name, lexicon: map[string]string{}}, nil
	})

	if _, err := cache.Get("m"); err == nil {
		t.Fatal("expected first load to fail")
	}
	if _, err := cache.Get("m"); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}
