package conversation

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"neurolink-speak/internal/model"
)

func testStore(t *testing.T) *LogStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.ConversationLog{}); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	return NewLogStore(db)
}

func TestAppendAndReadBackInOrder(t *testing.T) {
	store := testStore(t)

	const n = 10
	for i := 0; i < n; i++ {
		original := fmt.Sprintf("original %d", i)
		translated := fmt.Sprintf("translated %d", i)
		if err := store.Append(1, model.DirectionOutgoing, original, translated, ""); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	entries, err := store.EntriesByUser(1)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}

	for i, entry := range entries {
		if entry.OriginalText != fmt.Sprintf("original %d", i) {
			t.Errorf("entry %d out of order or mutated: %q", i, entry.OriginalText)
		}
		if entry.TranslatedText != fmt.Sprintf("translated %d", i) {
			t.Errorf("entry %d translated text mutated: %q", i, entry.TranslatedText)
		}
	}
}

func TestEntriesAreScopedPerUser(t *testing.T) {
	store := testStore(t)

	if err := store.Append(1, model.DirectionOutgoing, "mine", "mía", ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(2, model.DirectionIncoming, "theirs", "suya", ""); err != nil {
		t.Fatal(err)
	}

	entries, err := store.EntriesByUser(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].OriginalText != "mine" {
		t.Errorf("expected only user 1 entries, got %+v", entries)
	}
}

func TestEntryByID(t *testing.T) {
	store := testStore(t)

	if err := store.Append(1, model.DirectionOutgoing, "hello", "hola", "1_outgoing_0000.wav"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.EntriesByUser(1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("setup failed: %v", err)
	}

	entry, err := store.EntryByID(entries[0].ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if entry.AudioPath != "1_outgoing_0000.wav" {
		t.Errorf("unexpected audio path %q", entry.AudioPath)
	}

	if _, err := store.EntryByID(9999); err == nil {
		t.Error("expected lookup of unknown entry to fail")
	}
}
