package auth

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"neurolink-speak/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.ConversationLog{}); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	return db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := NewService(testDB(t))

	user, err := s.Register("alice", "Alice@Example.com", "secret123", "en", "es", "female")
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if user.Token == "" {
		t.Error("confirmation token not set")
	}

	if got := s.Authenticate("alice", "secret123"); got == nil {
		t.Error("expected authentication to succeed")
	}
	if got := s.Authenticate("alice", "wrong"); got != nil {
		t.Error("expected authentication to fail for wrong password")
	}
	if got := s.Authenticate("nobody", "secret123"); got != nil {
		t.Error("expected authentication to fail for unknown user")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	s := NewService(testDB(t))

	if _, err := s.Register("bob", "bob@example.com", "secret123", "", "", ""); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := s.Register("bob", "other@example.com", "secret123", "", "", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := s.Register("bob2", "bob@example.com", "secret123", "", "", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	s := NewService(testDB(t))

	if _, err := s.Register("carol", "carol@example.com", "123", "", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterDefaults(t *testing.T) {
	s := NewService(testDB(t))

	user, err := s.Register("dave", "dave@example.com", "secret123", "", "", "")
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if user.NativeLanguage != "en" || user.TargetLanguage != "es" || user.VoiceType != model.VoiceDefault {
		t.Errorf("defaults not applied: %+v", user)
	}
}

func TestConfirm(t *testing.T) {
	s := NewService(testDB(t))

	user, err := s.Register("erin", "erin@example.com", "secret123", "", "", "")
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if user.Status != 0 {
		t.Fatalf("new user should be unconfirmed, status %d", user.Status)
	}

	confirmed, err := s.Confirm(user.Token)
	if err != nil {
		t.Fatalf("confirmation failed: %v", err)
	}
	if confirmed.Status != 1 {
		t.Errorf("expected status 1 after confirmation, got %d", confirmed.Status)
	}

	if _, err := s.Confirm("not-a-uuid"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
	if _, err := s.Confirm("00000000-0000-0000-0000-000000000000"); err == nil {
		t.Error("expected unknown token to be rejected")
	}
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &model.User{Username: "alice"}
	user.ID = 7

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username != "alice" || claims.Subject != "7" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenIssuerRejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &model.User{Username: "alice"}
	user.ID = 7

	shortLived := NewTokenIssuer("test-secret", time.Nanosecond)
	token, err := shortLived.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := shortLived.Verify(token); err == nil {
		t.Error("expected expired token to be rejected")
	}

	other := NewTokenIssuer("other-secret", time.Hour)
	good, err := other.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := issuer.Verify(good); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	if _, err := issuer.Verify("garbage"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
