package conversation

import (
	"gorm.io/gorm"

	"neurolink-speak/internal/model"
)

// LogStore persists conversation log entries. Entries are append-only;
// nothing here updates or deletes them. Concurrent appends from
// different users are independent rows, so no coordination beyond the
// database's own row handling is needed.
type LogStore struct {
	db *gorm.DB
}

// NewLogStore creates a store over db.
func NewLogStore(db *gorm.DB) *LogStore {
	return &LogStore{db: db}
}

// Append writes one log entry. audioPath may be empty when no audio
// artifact exists for the exchange.
func (s *LogStore) Append(userID uint, direction, originalText, translatedText, audioPath string) error {
	entry := model.ConversationLog{
		UserID:         userID,
		Direction:      direction,
		OriginalText:   originalText,
		TranslatedText: translatedText,
		AudioPath:      audioPath,
	}
	return s.db.Create(&entry).Error
}

// EntriesByUser returns all of a user's log entries in insertion order.
func (s *LogStore) EntriesByUser(userID uint) ([]model.ConversationLog, error) {
	var entries []model.ConversationLog
	err := s.db.Where(&model.ConversationLog{UserID: userID}).Order("id asc").Find(&entries).Error
	return entries, err
}

// EntryByID fetches one log entry.
func (s *LogStore) EntryByID(id uint) (*model.ConversationLog, error) {
	var entry model.ConversationLog
	if err := s.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
