package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByID", getUserByID, id)
}

// GetUserByEmail matches emails case-insensitively.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByEmail", getUserByEmail, email)
}

func (r *userRepository) getUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePassword replaces the password hash and clears failed login state.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.execForUser(ctx, "*userRepository.UpdatePassword", updateUserPassword, id, passwordHash)
}

// ResetLoginAttempts clears failed login state; a locked account becomes active.
func (r *userRepository) ResetLoginAttempts(ctx context.Context, id uuid.UUID) error {
	return r.execForUser(ctx, "*userRepository.ResetLoginAttempts", resetLoginAttempts, id)
}

func (r *userRepository) execForUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// RecordFailedLogin increments the failure counter in a single statement so
// that concurrent failed logins are all counted.
func (r *userRepository) RecordFailedLogin(ctx context.Context, id uuid.UUID, lockAfter int, at time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, recordFailedLogin, id, at, lockAfter))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.RecordFailedLogin").Msg("error recording failed login")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*userRepository.RecordFailedLogin").
		Str("user_id", user.ID.String()).
		Int("failed_login_attempts", user.FailedLoginAttempts).
		Str("account_status", string(user.AccountStatus)).
		Msg("failed login recorded")

	return user, nil
}
