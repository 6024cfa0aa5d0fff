package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty       = errors.New("password cannot be empty")
	ErrMismatch    = errors.New("password does not match")
	ErrInvalidHash = errors.New("invalid password hash")
)

const DefaultCost = bcrypt.DefaultCost

// Hash returns the bcrypt hash of plain. Costs outside bcrypt's range fall
// back to DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hash, plain string) error {
	if plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// ValidateHash rejects configured hashes that bcrypt cannot parse.
func ValidateHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return ErrInvalidHash
	}
	return nil
}
