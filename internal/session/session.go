// Package session tracks the signed-in user.
//
// Credentials are checked for presence only; the Authenticator interface is
// the seam where a real identity provider would plug in. StubAuthenticator
// accepts any non-blank credentials and derives a contact address from the
// user name.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDomain is appended to user names to derive contact addresses.
const DefaultDomain = "xxxxxx.com"

// Credentials are what the login screen collects.
type Credentials struct {
	User   string
	Secret string
}

// ValidationError reports malformed user input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Validate rejects blank or whitespace-only fields.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.User) == "" {
		return &ValidationError{Field: "user"}
	}
	if strings.TrimSpace(c.Secret) == "" {
		return &ValidationError{Field: "secret"}
	}
	return nil
}

// Identity is an authenticated user.
type Identity struct {
	Name  string
	Email string
}

// Session is an active sign-in.
type Session struct {
	ID        uuid.UUID
	Identity  Identity
	StartedAt time.Time
}

// Authenticator verifies credentials against an identity provider.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Identity, error)
}

// StubAuthenticator accepts every validated credential pair.
type StubAuthenticator struct {
	Domain string
}

// Authenticate implements Authenticator.
func (a StubAuthenticator) Authenticate(ctx context.Context, creds Credentials) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}
	if err := creds.Validate(); err != nil {
		return Identity{}, err
	}
	domain := strings.TrimSpace(a.Domain)
	if domain == "" {
		domain = DefaultDomain
	}
	user := strings.TrimSpace(creds.User)
	return Identity{Name: user, Email: user + "@" + domain}, nil
}

// Manager owns the active session.
type Manager struct {
	auth    Authenticator
	clock   func() time.Time
	current *Session
}

// NewManager returns a manager with no active session. A nil auth falls back
// to StubAuthenticator.
func NewManager(auth Authenticator) *Manager {
	if auth == nil {
		auth = StubAuthenticator{}
	}
	return &Manager{auth: auth, clock: time.Now}
}

// Authenticator returns the collaborator used by Login.
func (m *Manager) Authenticator() Authenticator {
	return m.auth
}

// Login validates creds, authenticates them and starts a session.
func (m *Manager) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, err
	}
	id, err := m.auth.Authenticate(ctx, creds)
	if err != nil {
		return Session{}, fmt.Errorf("authenticate: %w", err)
	}
	return m.Establish(id), nil
}

// Establish starts a session for an identity that was authenticated
// elsewhere, replacing any previous one.
func (m *Manager) Establish(id Identity) Session {
	s := Session{ID: uuid.New(), Identity: id, StartedAt: m.clock()}
	m.current = &s
	return s
}

// Logout clears the session. Calling it without a session is a no-op.
func (m *Manager) Logout() {
	m.current = nil
}

// Current returns the active session, if any.
func (m *Manager) Current() (Session, bool) {
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Active reports whether a session exists.
func (m *Manager) Active() bool {
	return m.current != nil
}
