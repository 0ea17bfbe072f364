package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestLogin(t *testing.T) {
	p := NewStatic([]User{
		{Username: "admin", PasswordHash: hash(t, "s3cret"), Role: RoleAdmin},
		{Username: "viewer", PasswordHash: hash(t, "pw")},
	})

	id, err := p.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.Role != RoleAdmin {
		t.Errorf("role = %q", id.Role)
	}

	id, err = p.Login("viewer", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.Role != RoleUser {
		t.Errorf("default role = %q, want user", id.Role)
	}
}

func TestLoginRejected(t *testing.T) {
	p := NewStatic([]User{{Username: "admin", PasswordHash: hash(t, "s3cret")}})

	if _, err := p.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := p.Login("ghost", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}
}
