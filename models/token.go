package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType separates the purposes a signed token can serve. A token is
// accepted only where its type matches the expected one, so a refresh token
// can never authenticate a request and an access token can never refresh.
type TokenType string

const (
	TokenTypeAccess        TokenType = "access_token"
	TokenTypeRefresh       TokenType = "refresh_token"
	TokenTypePasswordReset TokenType = "password_reset"
)

// TokenClaims is the payload of every token issued by the service:
// {"id": <user id>, "type": <token type>, "exp": ..., "iat": ...}.
type TokenClaims struct {
	// UserID is the string form of the user's UUID.
	UserID string `json:"id"`

	// Type is the purpose of the token.
	Type TokenType `json:"type"`

	// Fingerprint binds a password reset token to the password hash it was
	// issued against. Empty for access and refresh tokens.
	Fingerprint string `json:"fp,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be placed in a cookie or a link.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID parses the "id" claim as a UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	if t.TokenClaims.UserID == "" {
		return uuid.Nil, fmt.Errorf("token has no id claim")
	}

	userID, err := uuid.Parse(t.TokenClaims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting id claim to UUID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the pair of tokens issued on login.
type Session struct {
	AccessToken  Token
	RefreshToken Token
}
