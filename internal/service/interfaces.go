package service

import (
	"context"
	"time"

	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies the signed tokens carried in cookies and
// password reset links.
type TokenService interface {
	CreateToken(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) (models.Token, error)
	// CreatePasswordResetToken binds the token to user's current password hash.
	CreatePasswordResetToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies raw and checks that its type is expected.
	ParseToken(ctx context.Context, raw string, expected models.TokenType) (models.Token, error)
	TTL(tokenType models.TokenType) time.Duration
}

type AuthService interface {
	// Authenticate resolves the user behind an access token and validates
	// the account status.
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)
	// ValidateUserStatus rejects locked, inactive and pending accounts. A
	// locked account whose lockout has elapsed is unlocked and returned.
	ValidateUserStatus(ctx context.Context, user models.User) (models.User, error)
}

type PasswordResetService interface {
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, req models.PasswordResetConfirmRequest) error
}

// EmailService renders transactional emails and queues them for delivery.
type EmailService interface {
	SendPasswordResetEmail(ctx context.Context, user models.User, token string) error
	SendAccountLockoutEmail(ctx context.Context, user models.User, lockedAt time.Time) error
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileCreateRequest) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error)
}

type NextOfKinService interface {
	CreateNextOfKin(ctx context.Context, userID uuid.UUID, req models.NextOfKinCreateRequest) (models.NextOfKin, error)
	ListNextOfKin(ctx context.Context, userID uuid.UUID) ([]models.NextOfKin, error)
}

// UploadService validates profile images, schedules their upload and
// reports the outcome once the background job finishes.
type UploadService interface {
	ScheduleImageUpload(ctx context.Context, userID uuid.UUID, imageType string, file models.ImageFile) (queue.Job, error)
	GetUploadStatus(ctx context.Context, userID uuid.UUID, taskID string) (models.UploadStatus, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TaskHandler executes one attempt of a background job and returns the
// value stored as the job result.
type TaskHandler interface {
	Handle(ctx context.Context, job queue.Job) (any, error)
}
