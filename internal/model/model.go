package model

import (
	"time"

	"gorm.io/gorm"
)

// Voice preference values stored on a user.
const (
	VoiceDefault = "default"
	VoiceMale    = "male"
	VoiceFemale  = "female"
)

// Direction values for a conversation log entry.
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// User struct
type User struct {
	gorm.Model
	Username       string `gorm:"unique_index;not null" json:"username" form:"username"`
	Email          string `gorm:"unique_index;not null" json:"email" form:"email"`
	Password       string `gorm:"not null" json:"-" form:"password"`
	NativeLanguage string `gorm:"not null;default:'en'" json:"native_language" form:"native_language"`
	TargetLanguage string `gorm:"not null;default:'es'" json:"target_language" form:"target_language"`
	VoiceType      string `gorm:"not null;default:'default'" json:"voice_type" form:"voice_type"`
	Status         uint   `gorm:"not null;default:0" json:"status"`
	Token          string `json:"-"`
	// DigestedAt marks the last time the digest worker notified this user.
	DigestedAt time.Time `json:"-"`
}

// ConversationLog struct. Entries are append-only: the application
// never updates or deletes them once written.
type ConversationLog struct {
	gorm.Model
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	Direction      string `gorm:"not null" json:"direction"`
	OriginalText   string `gorm:"type:text" json:"original_text"`
	TranslatedText string `gorm:"type:text" json:"translated_text"`
	AudioPath      string `json:"audio_path,omitempty"`
}
