package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims are the claims of an identity-provider session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	AuthorizedParty string `json:"azp,omitempty"`
}

// ParseSessionKey loads the RS256 public key session tokens are signed with.
func ParseSessionKey(pem string) (*rsa.PublicKey, error) {
	if pem == "" {
		return nil, errors.New("session verification key not configured")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("invalid session verification key: %w", err)
	}
	return key, nil
}

// ValidateSessionToken verifies signature and expiry and returns the subject (user id).
func ValidateSessionToken(tokenString string, key *rsa.PublicKey) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
