package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's "exp" claim is in the past.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers every other verification failure: bad signature,
	// unexpected algorithm, malformed payload.
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateJWTToken signs claims with the HMAC algorithm named by algorithm
// (HS256, HS384 or HS512).
//
// IssuedAt and ExpiresAt are set from the current time and tokenDuration,
// overriding whatever the caller placed in claims.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.TokenClaims{UserID: id.String(), Type: models.TokenTypeAccess}, 30*time.Minute, "secret", "HS256")
func GenerateJWTToken(claims models.TokenClaims, tokenDuration time.Duration, signKey, algorithm string) (models.Token, error) {
	if claims.UserID == "" || claims.Type == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := hmacMethod(algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString
// and returns its claims. Only the configured algorithm is accepted.
//
// The returned error wraps [ErrTokenExpired] for expired tokens and
// [ErrTokenInvalid] for anything else.
func ValidateAndParseJWTToken(tokenString, signKey, algorithm string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{algorithm}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.UserID == "" || claims.Type == "" {
		return models.Token{}, fmt.Errorf("%w: missing id or type claim", ErrTokenInvalid)
	}

	return models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}, nil
}

// IsSupportedAlgorithm reports whether algorithm names an HMAC signing method.
func IsSupportedAlgorithm(algorithm string) bool {
	_, err := hmacMethod(algorithm)
	return err == nil
}

func hmacMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch algorithm {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
}
