package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/mock"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(ctrl *gomock.Controller, now time.Time) (*authService, *mock.MockUserRepository, *mock.MockEmailService) {
	users := mock.NewMockUserRepository(ctrl)
	emails := mock.NewMockEmailService(ctrl)

	svc := NewAuthService(users, newTestTokenService(), emails, validators.NewRequestValidator(), testAuthConfig(), logger.Nop()).(*authService)
	svc.now = func() time.Time { return now }
	return svc, users, emails
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	user := testUser(t)

	token, err := svc.tokens.CreateToken(ctx, user.ID, models.TokenTypeAccess)
	require.NoError(t, err)
	users.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

	got, err := svc.Authenticate(ctx, token.String())

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthService(ctrl, time.Now())

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()

	token, err := svc.tokens.CreateToken(ctx, uuid.New(), models.TokenTypeRefresh)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token.String())
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	id := uuid.New()

	token, err := svc.tokens.CreateToken(ctx, id, models.TokenTypeAccess)
	require.NoError(t, err)
	users.EXPECT().GetUserByID(ctx, id).Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, token.String())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	id := uuid.New()

	token, err := svc.tokens.CreateToken(ctx, id, models.TokenTypeAccess)
	require.NoError(t, err)
	users.EXPECT().GetUserByID(ctx, id).Return(models.User{}, store.ErrExecutingQuery)

	_, err = svc.Authenticate(ctx, token.String())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

// ── ValidateUserStatus ──────────────────────────────────────────────────────

func TestValidateUserStatus(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Minute)

	tests := []struct {
		name   string
		modify func(u *models.User)
		want   error
	}{
		{name: "active", modify: func(u *models.User) {}},
		{name: "inactive status", modify: func(u *models.User) { u.AccountStatus = models.AccountStatusInactive }, want: ErrAccountInactive},
		{name: "is_active false", modify: func(u *models.User) { u.IsActive = false }, want: ErrAccountInactive},
		{name: "pending", modify: func(u *models.User) { u.AccountStatus = models.AccountStatusPending }, want: ErrAccountPending},
		{name: "locked recently", modify: func(u *models.User) {
			u.AccountStatus = models.AccountStatusLocked
			u.LastFailedLogin = &recent
		}, want: ErrAccountLocked},
		{name: "locked without failure time", modify: func(u *models.User) { u.AccountStatus = models.AccountStatusLocked }, want: ErrAccountLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthService(ctrl, now)
			user := testUser(t)
			tt.modify(&user)

			_, err := svc.ValidateUserStatus(context.Background(), user)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateUserStatus_LockoutElapsed_Unlocks(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, now)
	ctx := context.Background()

	failedAt := now.Add(-6 * time.Minute)
	user := testUser(t)
	user.AccountStatus = models.AccountStatusLocked
	user.FailedLoginAttempts = 3
	user.LastFailedLogin = &failedAt

	users.EXPECT().ResetLoginAttempts(ctx, user.ID).Return(nil)

	got, err := svc.ValidateUserStatus(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, got.AccountStatus)
	assert.Zero(t, got.FailedLoginAttempts)
	assert.Nil(t, got.LastFailedLogin)
}

// ── Refresh ─────────────────────────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	user := testUser(t)

	refresh, err := svc.tokens.CreateToken(ctx, user.ID, models.TokenTypeRefresh)
	require.NoError(t, err)
	users.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

	got, access, err := svc.Refresh(ctx, refresh.String())

	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, models.TokenTypeAccess, access.Type)

	parsed, err := svc.tokens.ParseToken(ctx, access.String(), models.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), parsed.UserID)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()

	access, err := svc.tokens.CreateToken(ctx, uuid.New(), models.TokenTypeAccess)
	require.NoError(t, err)

	_, _, err = svc.Refresh(ctx, access.String())
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestRefresh_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	user := testUser(t)
	user.IsActive = false

	refresh, err := svc.tokens.CreateToken(ctx, user.ID, models.TokenTypeRefresh)
	require.NoError(t, err)
	users.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

	_, _, err = svc.Refresh(ctx, refresh.String())
	assert.ErrorIs(t, err, ErrAccountInactive)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_ResetsAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()
	user := testUser(t)
	user.FailedLoginAttempts = 2

	gomock.InOrder(
		users.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil),
		users.EXPECT().ResetLoginAttempts(ctx, user.ID).Return(nil),
	)

	got, session, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Zero(t, got.FailedLoginAttempts)
	assert.Equal(t, models.TokenTypeAccess, session.AccessToken.Type)
	assert.Equal(t, models.TokenTypeRefresh, session.RefreshToken.Type)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, time.Now())
	ctx := context.Background()

	users.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword_RecordsFailure(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, now)
	ctx := context.Background()
	user := testUser(t)

	after := user
	after.FailedLoginAttempts = 1

	users.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	users.EXPECT().RecordFailedLogin(ctx, user.ID, 3, now).Return(after, nil)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword_LocksAndNotifies(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	svc, users, emails := newTestAuthService(ctrl, now)
	ctx := context.Background()
	user := testUser(t)
	user.FailedLoginAttempts = 2

	locked := user
	locked.FailedLoginAttempts = 3
	locked.AccountStatus = models.AccountStatusLocked
	locked.LastFailedLogin = &now

	users.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	users.EXPECT().RecordFailedLogin(ctx, user.ID, 3, now).Return(locked, nil)
	emails.EXPECT().SendAccountLockoutEmail(ctx, locked, now).Return(nil)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_LockoutEmailFailureStillLocks(t *testing.T) {
	now := time.Now()
	ctrl := gomock.NewController(t)
	svc, users, emails := newTestAuthService(ctrl, now)
	ctx := context.Background()
	user := testUser(t)

	locked := user
	locked.AccountStatus = models.AccountStatusLocked

	users.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	users.EXPECT().RecordFailedLogin(ctx, user.ID, 3, now).Return(locked, nil)
	emails.EXPECT().SendAccountLockoutEmail(ctx, locked, now).Return(errors.New("redis down"))

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_LockedAccountRejectedBeforePasswordCheck(t *testing.T) {
	now := time.Now()
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl, now)
	ctx := context.Background()

	failedAt := now.Add(-time.Minute)
	user := testUser(t)
	user.AccountStatus = models.AccountStatusLocked
	user.LastFailedLogin = &failedAt

	users.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: testPassword})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthService(ctrl, time.Now())

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice", Password: "short"})

	var validationErr *validators.RequestValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Details, 2)
}
