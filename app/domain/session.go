package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated principal.
// It is owned by the session use case; every other component holds a
// read-only reference.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	Active    bool      `json:"active"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a session with validation
func NewSession(id string, userID uuid.UUID, email, token string, expiresAt time.Time) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	if userID == (uuid.UUID{}) {
		return nil, fmt.Errorf("user ID is required")
	}

	if expiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("session expiry must be in the future")
	}

	return &Session{
		ID:        id,
		UserID:    userID,
		Email:     email,
		Token:     token,
		Active:    true,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is active and not expired
func (s *Session) IsValid() bool {
	return s.Active && !s.IsExpired()
}

// Deactivate marks the session as inactive
func (s *Session) Deactivate() {
	s.Active = false
}
