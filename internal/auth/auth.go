// Package auth is the login stub: any non-empty credential pair is accepted
// and only the display name is kept, persisted under the data dir so the
// console stays signed in between runs.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const userFile = "user.json"

// ErrEmptyCredentials rejects a login with a blank username or password.
var ErrEmptyCredentials = errors.New("username and password are required")

// User is the authenticated operator.
type User struct {
	Name string `json:"name"`
}

// Session holds the current user. It is constructed once at startup and
// threaded explicitly; there is no package-level state.
type Session struct {
	path string
	user *User
}

// Load restores a persisted session from dataDir. A missing or unreadable
// user file simply yields a signed-out session.
func Load(dataDir string) *Session {
	s := &Session{path: filepath.Join(dataDir, userFile)}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil || strings.TrimSpace(u.Name) == "" {
		return s
	}
	s.user = &u
	return s
}

// Login accepts any non-empty credentials and persists the display name.
func (s *Session) Login(username, password string) error {
	name := strings.TrimSpace(username)
	if name == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyCredentials
	}

	u := User{Name: name}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	s.user = &u
	return nil
}

// Logout clears the session and removes the persisted name.
func (s *Session) Logout() error {
	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

// User returns the signed-in user, if any.
func (s *Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}
