package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

// SessionService verifies credentials and manages login sessions. A session
// is a server-side row referenced by a signed HS256 token the client carries
// in its cookie; the token is tamper-evident, and revoking the row ends the
// session even if the client keeps the token.
type SessionService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewSessionService(db *gorm.DB, secret string, ttl time.Duration) *SessionService {
	return &SessionService{DB: db, secret: []byte(secret), ttl: ttl}
}

// Login verifies the credentials and on success issues a session token bound
// to the username. Unknown users and bad passwords both return
// ErrUnauthorized.
func (s *SessionService) Login(username, password string) (string, error) {
	var account models.Account
	if err := s.DB.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if !utils.VerifyPassword(account.PasswordHash, password) {
		return "", ErrUnauthorized
	}

	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.NewString(),
		Username:  account.Username,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": session.ID,
		"sub": session.Username,
		"exp": session.ExpiresAt.Unix(),
		"iat": now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate validates a session token and returns the bound username.
// Any failure — bad signature, expired token, revoked or expired session
// row — is ErrUnauthorized.
func (s *SessionService) Authenticate(token string) (string, error) {
	sid, username, err := s.parse(token)
	if err != nil {
		return "", ErrUnauthorized
	}

	var session models.Session
	if err := s.DB.First(&session, "id = ?", sid).Error; err != nil {
		return "", ErrUnauthorized
	}
	if session.Username != username || time.Now().UTC().After(session.ExpiresAt) {
		return "", ErrUnauthorized
	}
	return session.Username, nil
}

// Logout revokes the session behind the token. Invalid tokens are a no-op:
// the client ends up logged out either way.
func (s *SessionService) Logout(token string) error {
	sid, _, err := s.parse(token)
	if err != nil {
		return nil
	}
	return s.DB.Delete(&models.Session{}, "id = ?", sid).Error
}

func (s *SessionService) parse(token string) (sid, username string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", "", ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrUnauthorized
	}
	sid, _ = claims["sid"].(string)
	username, _ = claims["sub"].(string)
	if sid == "" || username == "" {
		return "", "", ErrUnauthorized
	}
	return sid, username, nil
}
