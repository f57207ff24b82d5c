package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

// tokenService signs every token type with the same HMAC key. Type
// separation is enforced by the "type" claim, never by the key.
type tokenService struct {
	signKey   string
	algorithm string

	ttls map[models.TokenType]time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:   cfg.SigningKey,
		algorithm: cfg.JWTAlgorithm,
		ttls: map[models.TokenType]time.Duration{
			models.TokenTypeAccess:        cfg.AccessTokenTTL,
			models.TokenTypeRefresh:       cfg.RefreshTokenTTL,
			models.TokenTypePasswordReset: cfg.PasswordResetTTL,
		},
		logger: logger,
	}
}

func (s *tokenService) TTL(tokenType models.TokenType) time.Duration {
	return s.ttls[tokenType]
}

// CreateToken issues a token of tokenType for userID, valid for the TTL
// configured for that type.
func (s *tokenService) CreateToken(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) (models.Token, error) {
	return s.create(ctx, models.TokenClaims{UserID: userID.String(), Type: tokenType})
}

func (s *tokenService) CreatePasswordResetToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.create(ctx, models.TokenClaims{
		UserID:      user.ID.String(),
		Type:        models.TokenTypePasswordReset,
		Fingerprint: utils.PasswordFingerprint(user.PasswordHash, s.signKey),
	})
}

func (s *tokenService) create(ctx context.Context, claims models.TokenClaims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, s.TTL(claims.Type), s.signKey, s.algorithm)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*tokenService.create").
			Str("type", string(claims.Type)).
			Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature, algorithm and expiry of raw before
// comparing its type with expected. Errors are normalised to
// ErrTokenMissing, ErrTokenExpired, ErrInvalidTokenType or ErrTokenInvalid.
func (s *tokenService) ParseToken(ctx context.Context, raw string, expected models.TokenType) (models.Token, error) {
	if raw == "" {
		return models.Token{}, ErrTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(raw, s.signKey, s.algorithm)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*tokenService.ParseToken").
			Str("expected", string(expected)).
			Msg("token rejected")

		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	if token.Type != expected {
		return models.Token{}, ErrInvalidTokenType
	}

	if _, err = token.GetUserID(); err != nil {
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
