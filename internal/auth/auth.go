// Package auth implements the static identity provider: a fixed table of
// users with bcrypt password hashes and a user/admin role flag. No sessions
// or tokens are persisted; the caller stores the result itself.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrInvalidCredentials is returned for an unknown user or wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the authenticated principal.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Provider authenticates a username/password pair.
type Provider interface {
	Login(username, password string) (*Identity, error)
}

// User is one entry of the static table.
type User struct {
	Username     string
	PasswordHash string // bcrypt
	Role         string
}

// Static implements Provider over an in-memory user table.
type Static struct {
	users map[string]User
}

// NewStatic builds a provider from the configured users. A missing or
// unknown role defaults to user.
func NewStatic(users []User) *Static {
	table := make(map[string]User, len(users))
	for _, u := range users {
		if u.Role != RoleAdmin {
			u.Role = RoleUser
		}
		table[u.Username] = u
	}
	return &Static{users: table}
}

// Login verifies the password against the stored bcrypt hash. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *Static) Login(username, password string) (*Identity, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{Username: u.Username, Role: u.Role}, nil
}
