package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/identity"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

const (
	operatorRole     = "operator"
	operatorTokenTTL = 12 * time.Hour
)

var (
	ErrInvalidOperatorKey    = errors.New("invalid operator key")
	ErrOperatorLoginDisabled = errors.New("operator login disabled")
	ErrNilTokenizer          = errors.New("tokenizer is required")
)

// Auth exchanges the operator key for a signed token.
type Auth struct {
	keyHash   string
	tokenizer i.Tokenizer
}

// NewAuthService creates the operator authenticator. An empty keyHash disables sign in.
func NewAuthService(keyHash string, tokenizer i.Tokenizer) (*Auth, error) {
	if tokenizer == nil {
		return nil, ErrNilTokenizer
	}

	return &Auth{
		keyHash:   keyHash,
		tokenizer: tokenizer,
	}, nil
}

func (a *Auth) SignIn(key string) (string, error) {
	if a.keyHash == "" {
		return "", ErrOperatorLoginDisabled
	}
	if !identity.VerifyKey(a.keyHash, key) {
		return "", ErrInvalidOperatorKey
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"role": operatorRole,
	}, operatorTokenTTL)
}
