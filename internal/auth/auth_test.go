package auth

import (
	"errors"
	"testing"
)

func TestSession_LoginPersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	s := Load(dir)
	if _, ok := s.User(); ok {
		t.Fatal("fresh session reports a user")
	}

	if err := s.Login("  ana  ", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	u, ok := s.User()
	if !ok || u.Name != "ana" {
		t.Fatalf("User = %#v, %v; want trimmed ana", u, ok)
	}

	restored := Load(dir)
	u, ok = restored.User()
	if !ok || u.Name != "ana" {
		t.Fatalf("restored User = %#v, %v", u, ok)
	}
}

func TestSession_LoginRejectsEmptyCredentials(t *testing.T) {
	s := Load(t.TempDir())
	for _, creds := range [][2]string{{"", "x"}, {"ana", ""}, {"  ", "  "}} {
		if err := s.Login(creds[0], creds[1]); !errors.Is(err, ErrEmptyCredentials) {
			t.Fatalf("Login(%q, %q) = %v, want ErrEmptyCredentials", creds[0], creds[1], err)
		}
	}
}

func TestSession_LogoutClearsUser(t *testing.T) {
	dir := t.TempDir()
	s := Load(dir)
	if err := s.Login("ana", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := s.User(); ok {
		t.Fatal("User still set after Logout")
	}
	if _, ok := Load(dir).User(); ok {
		t.Fatal("persisted user survives Logout")
	}

	// Logging out twice is fine.
	if err := s.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}
