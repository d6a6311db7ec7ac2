package model

import "github.com/golang-jwt/jwt/v5"

// TokenType discriminates access tokens from refresh tokens. A token of one
// type is never accepted where the other is expected, even if its signature
// and expiry are otherwise valid.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// AuthClaims is the claim set embedded in both token kinds.
type AuthClaims struct {
	UserID    int       `json:"user_id"`
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}
