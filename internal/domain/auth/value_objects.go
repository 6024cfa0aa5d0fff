package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

type Role string

const (
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Credentials is the shared admin password submitted to the access endpoint.
type Credentials struct {
	password string
}

func NewCredentials(password string) (Credentials, error) {
	if strings.TrimSpace(password) == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{password: password}, nil
}

func (c Credentials) Password() string {
	return c.password
}

// Session is an authenticated admin session. Each grant gets its own subject.
type Session struct {
	subject uuid.UUID
	role    Role
}

func NewSession() Session {
	return Session{subject: uuid.New(), role: RoleAdmin}
}

func ReconstructSession(subject uuid.UUID, role Role) Session {
	return Session{subject: subject, role: role}
}

func (s Session) Subject() uuid.UUID { return s.subject }
func (s Session) Role() Role         { return s.role }
