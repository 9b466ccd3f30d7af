// Package token signs and verifies the HS256 tokens guarding operator routes.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken            = errors.New("invalid token")
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	ErrEmptySecret             = errors.New("token secret must not be empty")
)

// JwtService implements i.Tokenizer with HMAC-SHA256 and an issuer claim.
type JwtService struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
}

// NewJwtService creates a tokenizer signing with secretKey. Tokens from another issuer are rejected.
func NewJwtService(secretKey, issuer string) (*JwtService, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		now:       time.Now,
	}, nil
}

// Generate signs claims. The registered claims exp, iat and iss are set by the service.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := s.now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["exp"] = now.Add(expTime).Unix()
	jwtClaims["iat"] = now.Unix()
	jwtClaims["iss"] = s.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString(s.secretKey)
}

// Decode validates signature, expiry and issuer and returns the claims.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}

	return claims, nil
}

func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.secretKey, nil
}
