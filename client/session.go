package client

import (
	"encoding/json"
	"errors"
)

// SessionUser is the identity snapshot persisted alongside the token.
// It mirrors what the login endpoint returns and may go stale until
// the next login; servers re-check the role on every request.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

var (
	ErrNotAuthenticated = errors.New("não autenticado")
	ErrAccessDenied     = errors.New("Acesso negado")
)

// Session exposes the credential state held in a Store.
type Session struct {
	store Store
}

func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored token, or "" when absent.
func (s *Session) Token() string {
	v, err := s.store.Get(KeyToken)
	if err != nil {
		return ""
	}
	return v
}

// User returns the stored identity snapshot. An unreadable snapshot is
// discarded so the session never reports a half-valid state.
func (s *Session) User() (SessionUser, bool) {
	raw, err := s.store.Get(KeyUser)
	if err != nil {
		return SessionUser{}, false
	}
	var u SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.store.Delete(KeyUser)
		return SessionUser{}, false
	}
	return u, true
}

// Save stores the credentials issued at login.
func (s *Session) Save(token string, user SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(KeyToken, token); err != nil {
		return err
	}
	return s.store.Set(KeyUser, string(raw))
}

// Clear removes both credential entries.
func (s *Session) Clear() {
	s.store.Delete(KeyToken)
	s.store.Delete(KeyUser)
}

// Authenticated reports whether a token is present. It does not verify
// the token; an expired one is cleared on the first rejected request.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// RequireAuth fails with ErrNotAuthenticated when no token is stored.
func (s *Session) RequireAuth() error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireRole fails when no token is stored or the stored identity
// does not carry the wanted role.
func (s *Session) RequireRole(role string) error {
	if err := s.RequireAuth(); err != nil {
		return err
	}
	u, ok := s.User()
	if !ok || u.Role != role {
		return ErrAccessDenied
	}
	return nil
}
