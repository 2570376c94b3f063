package service

import (
	"errors"
	"fmt"

	autherror "github.com/AnthoniusHendriyanto/chat-login/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts the slow salted hash used for stored passwords.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	// Verify reports whether secret matches hash. A mismatch is not an
	// error; a hash that cannot be checked at all is.
	Verify(secret, hash string) (bool, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(secret, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", autherror.ErrHashVerification, err)
	}
}
