// Package auth abstracts how account secrets are stored and compared so
// the directories never handle raw password comparison themselves.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Names accepted by New.
const (
	HasherPlain  = "plain"
	HasherBcrypt = "bcrypt"
)

// Verifier turns a raw secret into its stored form and checks a candidate
// secret against a stored value.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(stored, secret string) bool
}

// New returns the verifier registered under name. cost is only used by
// bcrypt; values outside bcrypt's range fall back to bcrypt.DefaultCost.
func New(name string, cost int) (Verifier, error) {
	switch name {
	case HasherPlain:
		return PlainText{}, nil
	case HasherBcrypt:
		return NewBcrypt(cost), nil
	default:
		return nil, fmt.Errorf("auth: unknown hasher %q", name)
	}
}

// PlainText stores secrets verbatim. Only meant for tests and demos.
type PlainText struct{}

// Hash returns secret unchanged.
func (PlainText) Hash(secret string) (string, error) { return secret, nil }

// Verify compares in constant time.
func (PlainText) Verify(stored, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(secret)) == 1
}

// Bcrypt stores salted bcrypt hashes. Secrets are reduced to a base64
// SHA-256 digest first, so bcrypt's 72-byte input limit never applies.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt verifier with the given work factor.
func NewBcrypt(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (b Bcrypt) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(secret), b.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether secret matches the stored hash.
func (b Bcrypt) Verify(stored, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), digest(secret)) == nil
}

// digest is the 44-byte bcrypt input for secret. The base64 step keeps
// NUL bytes out of the input.
func digest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
