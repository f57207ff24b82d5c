package service

import (
	"testing"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testPassword = "Str0ngPassw0rd!"

func testAuthConfig() config.Auth {
	return config.Auth{
		SigningKey:       "test-signing-key",
		JWTAlgorithm:     "HS256",
		AccessTokenTTL:   30 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordResetTTL: 15 * time.Minute,
		CookiePath:       "/",
		LoginAttempts:    3,
		LockoutDuration:  5 * time.Minute,
	}
}

func testUser(t *testing.T) models.User {
	t.Helper()
	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)

	return models.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		FirstName:     "Alice",
		LastName:      "Smith",
		IDNo:          123456,
		PasswordHash:  hash,
		AccountStatus: models.AccountStatusActive,
		Role:          models.RoleCustomer,
		IsActive:      true,
	}
}

func newTestTokenService() TokenService {
	return NewTokenService(testAuthConfig(), logger.Nop())
}
