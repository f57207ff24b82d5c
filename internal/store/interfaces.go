package store

import (
	"context"
	"time"

	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads users and maintains their credential state.
type UserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	// GetUserByEmail looks up a user regardless of status or activity.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdatePassword stores a new hash and clears failed login state.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// RecordFailedLogin increments the failure counter, stamps the failure
	// time and locks the account once the counter reaches lockAfter.
	RecordFailedLogin(ctx context.Context, id uuid.UUID, lockAfter int, at time.Time) (models.User, error)
	// ResetLoginAttempts clears failed login state and unlocks a locked account.
	ResetLoginAttempts(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository persists the one-per-user KYC profile.
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	// UpdateProfile writes only the fields present in update.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdateRequest) (models.Profile, error)
	SetImageURL(ctx context.Context, userID uuid.UUID, imageType models.ImageType, url string) (models.Profile, error)
}

// NextOfKinRepository persists next-of-kin records.
type NextOfKinRepository interface {
	ListNextOfKin(ctx context.Context, userID uuid.UUID) ([]models.NextOfKin, error)
	// CreateNextOfKin serializes creations per user. prepare receives the
	// records that exist at the moment of insertion and returns the record to
	// insert or an error that aborts the transaction.
	CreateNextOfKin(ctx context.Context, userID uuid.UUID, prepare PrepareNextOfKinFunc) (models.NextOfKin, error)
}

// PrepareNextOfKinFunc decides, under the per-user lock, what to insert.
type PrepareNextOfKinFunc func(existing []models.NextOfKin) (models.NextOfKin, error)
