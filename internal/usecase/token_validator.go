package usecase

import (
	"room-reservation/internal/domain/auth"
	"room-reservation/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the admin session it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Session, error)
}

type jwtSessionValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return jwtSessionValidator{tokens: tokens}
}

func (v jwtSessionValidator) ValidateToken(tokenString string) (auth.Session, error) {
	claims, err := v.tokens.Verify(tokenString)
	if err != nil {
		return auth.Session{}, err
	}
	return claims.Session()
}
