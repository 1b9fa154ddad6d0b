// Package secure turns plaintext passwords into stored digests.
package secure

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Digest(secret string) (string, error)
	Verify(secret, digest string) bool
}

const (
	KindSHA256 = "sha256"
	KindBcrypt = "bcrypt"
)

// NewHasher returns the hasher registered under kind.
func NewHasher(kind string) (Hasher, error) {
	switch kind {
	case "", KindSHA256:
		return SHA256Hasher{}, nil
	case KindBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", kind)
	}
}

// SHA256Hasher produces lower-case hex SHA-256 digests. The same secret
// always yields the same digest.
type SHA256Hasher struct{}

func (SHA256Hasher) Digest(secret string) (string, error) {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(secret, digest string) bool {
	got, _ := h.Digest(secret)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}

// BcryptHasher salts every digest, so Digest is not repeatable and Verify
// must be used for comparison.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Digest(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
