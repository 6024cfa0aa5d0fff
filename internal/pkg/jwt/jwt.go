package jwt

import (
	"errors"
	"time"

	"room-reservation/internal/domain/auth"
	"room-reservation/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const issuer = "room-reservation"

type Claims struct {
	Subject uuid.UUID `json:"sid"`
	Role    string    `json:"role"`
	jwt.RegisteredClaims
}

// Session rebuilds the admin session the token was issued for.
func (c *Claims) Session() (auth.Session, error) {
	role, err := auth.NewRole(c.Role)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.ReconstructSession(c.Subject, role), nil
}

type Token struct {
	Value     string
	ExpiresAt time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.now = c.Now }
}

// Service signs HS256 session tokens with a fixed lifetime.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Issue(session auth.Session) (Token, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := Claims{
		Subject: session.Subject(),
		Role:    session.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, s.key,
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) key(*jwt.Token) (any, error) {
	return s.secret, nil
}
