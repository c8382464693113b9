// Package auth covers password credentials, signup and API tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"neurolink-speak/internal/model"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrWeakPassword  = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Service performs credential checks and signup against the database.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a new user with the given credentials and
// preferences. Duplicate username or email yields no user and a
// descriptive error; nothing here panics.
func (s *Service) Register(username, email, password, nativeLang, targetLang, voiceType string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	var existing model.User
	if err := s.db.Where(&model.User{Username: username}).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}
	if err := s.db.Where(&model.User{Email: email}).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	if nativeLang == "" {
		nativeLang = "en"
	}
	if targetLang == "" {
		targetLang = "es"
	}
	if voiceType == "" {
		voiceType = model.VoiceDefault
	}

	token, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:       username,
		Email:          email,
		Password:       hash,
		NativeLanguage: nativeLang,
		TargetLanguage: targetLang,
		VoiceType:      voiceType,
		Token:          token.String(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("could not create user: %v", err)
	}

	return &user, nil
}

// Authenticate checks the username and password combination, returning
// nil when it is invalid.
func (s *Service) Authenticate(username, password string) *model.User {
	var user model.User
	s.db.Where(&model.User{Username: strings.TrimSpace(username)}).First(&user)

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil
	}
	return &user
}

// Confirm activates the account matching the confirmation token.
func (s *Service) Confirm(token string) (*model.User, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, err
	}

	var user model.User
	s.db.Where(&model.User{Token: token}).First(&user)
	if user.Email == "" {
		return nil, errors.New("invalid confirmation link")
	}

	user.Status = 1
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TokenIssuer mints and verifies API tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// Claims carried by an API token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the user.
func (i *TokenIssuer) Issue(user *model.User) (string, error) {
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
