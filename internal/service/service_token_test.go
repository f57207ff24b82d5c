package service

import (
	"context"
	"testing"
	"time"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CreateToken / ParseToken ────────────────────────────────────────────────

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.CreateToken(ctx, userID, models.TokenTypeAccess)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.String(), models.TokenTypeAccess)
	require.NoError(t, err)

	got, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, models.TokenTypeAccess, parsed.Type)
}

func TestTokenService_TTLPerType(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	access, err := svc.CreateToken(ctx, uuid.New(), models.TokenTypeAccess)
	require.NoError(t, err)
	refresh, err := svc.CreateToken(ctx, uuid.New(), models.TokenTypeRefresh)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(30*time.Minute), access.ExpiresAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), refresh.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, 15*time.Minute, svc.TTL(models.TokenTypePasswordReset))
}

func TestTokenService_TypeSeparation(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	refresh, err := svc.CreateToken(ctx, uuid.New(), models.TokenTypeRefresh)
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, refresh.String(), models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	access, err := svc.CreateToken(ctx, uuid.New(), models.TokenTypeAccess)
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, access.String(), models.TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestTokenService_ParseErrors(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(models.TokenClaims{UserID: uuid.NewString(), Type: models.TokenTypeAccess}, time.Millisecond, "test-signing-key", "HS256")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	foreign, err := utils.GenerateJWTToken(models.TokenClaims{UserID: uuid.NewString(), Type: models.TokenTypeAccess}, time.Hour, "other-key", "HS256")
	require.NoError(t, err)

	otherAlg, err := utils.GenerateJWTToken(models.TokenClaims{UserID: uuid.NewString(), Type: models.TokenTypeAccess}, time.Hour, "test-signing-key", "HS512")
	require.NoError(t, err)

	notUUID, err := utils.GenerateJWTToken(models.TokenClaims{UserID: "42", Type: models.TokenTypeAccess}, time.Hour, "test-signing-key", "HS256")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "", want: ErrTokenMissing},
		{name: "expired", raw: expired.String(), want: ErrTokenExpired},
		{name: "foreign key", raw: foreign.String(), want: ErrTokenInvalid},
		{name: "other algorithm", raw: otherAlg.String(), want: ErrTokenInvalid},
		{name: "malformed", raw: "not.a.jwt", want: ErrTokenInvalid},
		{name: "id is not a uuid", raw: notUUID.String(), want: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.raw, models.TokenTypeAccess)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenService_PasswordResetFingerprint(t *testing.T) {
	svc := NewTokenService(testAuthConfig(), logger.Nop())
	user := testUser(t)

	token, err := svc.CreatePasswordResetToken(context.Background(), user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.String(), models.TokenTypePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, utils.PasswordFingerprint(user.PasswordHash, "test-signing-key"), parsed.Fingerprint)
}
