package commands

import (
	"context"
	"time"

	"room-reservation/internal/domain/auth"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
)

var ErrTokenGeneration = errs.New("token generation failed")

type AccessResult struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
	Session   auth.Session
}

// AdminCommands grants the administrator session behind the shared password gate.
type AdminCommands interface {
	Access(ctx context.Context, plain string) (*AccessResult, error)
}

type adminCommandsImpl struct {
	passwordHash string
	tokens       *jwt.Service
}

func NewAdminCommands(passwordHash string, tokens *jwt.Service) AdminCommands {
	return &adminCommandsImpl{
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (a *adminCommandsImpl) Access(_ context.Context, plain string) (*AccessResult, error) {
	creds, err := auth.NewCredentials(plain)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAdminCredentials)
	}

	if err := password.Compare(a.passwordHash, creds.Password()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAdminCredentials)
	}

	session := auth.NewSession()
	token, err := a.tokens.Issue(session)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AccessResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		TTL:       a.tokens.TTL(),
		Session:   session,
	}, nil
}
