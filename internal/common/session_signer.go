package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionSigner issues and validates the signed UI session cookie.
// The cookie is an HS256 JWT whose jti is the session id.
type SessionSigner struct {
	secretKey []byte
	ttl       time.Duration
}

func NewSessionSigner(secretKey []byte, ttl time.Duration) *SessionSigner {
	return &SessionSigner{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// TTL is the lifetime of issued tokens
func (s *SessionSigner) TTL() time.Duration {
	return s.ttl
}

// NewSession generates a fresh session id and its signed token
func (s *SessionSigner) NewSession() (sessionID, token string, err error) {
	sessionID = uuid.New().String()
	token, err = s.Sign(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// Sign returns a token for an existing session id, valid for the signer's TTL
func (s *SessionSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate returns the session id carried by a token
func (s *SessionSigner) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", errors.New("missing or invalid jti claim")
	}
	return claims.ID, nil
}
