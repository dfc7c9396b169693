package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vetlig/vetlig/internal/common"
)

// TokenService signs and verifies the time-limited identity tokens handed
// out at login. Tokens are stateless: once issued they stay valid until the
// embedded expiry passes or the signature stops checking out.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	validity time.Duration
}

// NewTokenService builds a TokenService from the process configuration.
// The secret must be non-empty and algorithm one of the HMAC methods
// (HS256/HS384/HS512); anything else is a startup error.
func NewTokenService(secret []byte, algorithm string, validity time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token service: empty secret")
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token service: unsupported signing method %q", algorithm)
	}
	if validity <= 0 {
		return nil, errors.New("token service: non-positive validity")
	}
	return &TokenService{secret: secret, method: method, validity: validity}, nil
}

// Issue mints a signed token binding subject (the user's email) to an
// expiry of now + the configured validity.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded subject.
// Failures map to exactly two sentinels: common.ErrTokenExpired for an
// otherwise valid token past its expiry, common.ErrInvalidToken for
// everything else (bad signature, wrong method, malformed string, missing
// subject). Callers at the boundary must collapse both into one uniform
// unauthorized response.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}
