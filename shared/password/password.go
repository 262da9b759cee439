package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = bcrypt.DefaultCost

var ErrInvalidPassword = errors.New("invalid password")

// Hash derives a bcrypt hash from the plain password. bcrypt reads at most
// 72 bytes, so longer inputs are rejected rather than silently truncated.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password is empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt hash. A mismatch
// yields ErrInvalidPassword; a malformed hash surfaces as a distinct error.
func Verify(plain, hashed string) error {
	if plain == "" || hashed == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
