// file: service/token_service.go

package service

import (
	"errors"
	"isidro-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL is how long an access token stays valid after issuance.
	AccessTokenTTL = 24 * time.Hour
	// RefreshTokenTTL is how long a refresh token stays valid. It also
	// drives the Max-Age of the refresh_token cookie.
	RefreshTokenTTL = 15 * 24 * time.Hour
)

// ErrInvalidToken is the single failure result for every verification
// problem: bad signature, malformed token, expiry, or wrong token type.
// Callers never learn which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies the two token kinds. It is stateless:
// a pure function of its inputs, the signing secret, and the clock.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given secret.
// Rotating the secret invalidates every outstanding token.
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// NewTokenServiceWithClock is like NewTokenService but with an injected
// clock, used by tests to exercise expiry without sleeping.
func NewTokenServiceWithClock(secret []byte, now func() time.Time) *TokenService {
	return &TokenService{secret: secret, now: now}
}

// IssueAccess signs a 24-hour access token for the given user.
func (s *TokenService) IssueAccess(userID int) (string, error) {
	return s.issue(userID, model.TokenTypeAccess, AccessTokenTTL)
}

// IssueRefresh signs a 15-day refresh token for the given user.
func (s *TokenService) IssueRefresh(userID int) (string, error) {
	return s.issue(userID, model.TokenTypeRefresh, RefreshTokenTTL)
}

func (s *TokenService) issue(userID int, tokenType model.TokenType, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &model.AuthClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns the embedded user ID.
func (s *TokenService) VerifyAccess(tokenString string) (int, error) {
	return s.verify(tokenString, model.TokenTypeAccess)
}

// VerifyRefresh validates a refresh token and returns the embedded user ID.
func (s *TokenService) VerifyRefresh(tokenString string) (int, error) {
	return s.verify(tokenString, model.TokenTypeRefresh)
}

func (s *TokenService) verify(tokenString string, expected model.TokenType) (int, error) {
	claims := &model.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.TokenType != expected {
		return 0, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
