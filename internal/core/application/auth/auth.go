// Package auth gates the operator surface. A successful Login yields a
// session token; Authorize turns a live token into a Capability, which every
// operator entry point of the panel requires.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderpanel/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is how long an operator session stays valid.
const DefaultSessionTTL = 24 * time.Hour

var (
	// ErrUnauthorized covers a wrong password, an unknown or expired token and
	// a zero-value Capability. Callers cannot tell these apart.
	ErrUnauthorized = errors.New("unauthorized")

	ErrPasswordHashIsRequired = errors.New("operator password hash is required")
)

// Capability proves the holder passed the operator gate. Only Authorize can
// produce a valid one.
type Capability struct {
	token string
}

// Validate returns ErrUnauthorized for a Capability not minted by Authorize.
func (c Capability) Validate() error {
	if c.token == "" {
		return ErrUnauthorized
	}
	return nil
}

// Session is what Login hands back to the operator.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Authenticator struct {
	passwordHash []byte
	sessions     ports.SessionStore
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthenticator takes the bcrypt hash of the operator password. A
// non-positive ttl falls back to DefaultSessionTTL.
func NewAuthenticator(passwordHash string, sessions ports.SessionStore, ttl time.Duration) (*Authenticator, error) {
	if passwordHash == "" {
		return nil, ErrPasswordHashIsRequired
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("operator password hash: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Authenticator{
		passwordHash: []byte(passwordHash),
		sessions:     sessions,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login checks the password and opens a new session.
func (a *Authenticator) Login(ctx context.Context, password string) (Session, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return Session{}, ErrUnauthorized
	}

	token := uuid.NewString()
	if err := a.sessions.Save(ctx, token, a.ttl); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	return Session{Token: token, ExpiresAt: a.now().Add(a.ttl).UTC()}, nil
}

// Authorize exchanges a live session token for a Capability.
func (a *Authenticator) Authorize(ctx context.Context, token string) (Capability, error) {
	if token == "" {
		return Capability{}, ErrUnauthorized
	}

	ok, err := a.sessions.Exists(ctx, token)
	if err != nil {
		return Capability{}, fmt.Errorf("look up session: %w", err)
	}
	if !ok {
		return Capability{}, ErrUnauthorized
	}

	return Capability{token: token}, nil
}

// Logout ends the session. Ending an unknown session is not an error.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.Delete(ctx, token)
}
