package i

import (
	"time"
)

// Tokenizer issues and verifies signed operator tokens.
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}

// Authenticator exchanges the operator key for a token.
type Authenticator interface {
	SignIn(key string) (string, error)
}
