// Package identity hashes and verifies the operator key that unlocks the
// protected HTTP routes.
package identity

import (
	"errors"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minKeyStrengthScore = 3
	minKeyLength        = 12
	hashCost            = 14
)

var (
	ErrWeakKey  = errors.New("operator key is too weak")
	ErrShortKey = errors.New("operator key is too short")
)

// HashKey validates the strength of key and returns its bcrypt hash, ready
// for OPERATOR_KEY_HASH.
func HashKey(key string) (string, error) {
	return hashKey(key, hashCost)
}

func hashKey(key string, cost int) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	return string(bytes), err
}

// VerifyKey reports whether key matches hash.
func VerifyKey(hash, key string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

func validateKey(key string) error {
	if len(key) < minKeyLength {
		return ErrShortKey
	}
	if zxcvbn.PasswordStrength(key, nil).Score < minKeyStrengthScore {
		return ErrWeakKey
	}
	return nil
}
