package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
)

type passwordResetService struct {
	userRepository store.UserRepository
	tokens         TokenService
	emails         EmailService
	validator      validators.Validator

	// fingerprintKey keys the password hash fingerprint in reset tokens.
	fingerprintKey string

	logger *logger.Logger
}

func NewPasswordResetService(userRepository store.UserRepository, tokens TokenService, emails EmailService, validator validators.Validator, fingerprintKey string, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		tokens:         tokens,
		emails:         emails,
		validator:      validator,
		fingerprintKey: fingerprintKey,
		logger:         logger,
	}
}

// RequestPasswordReset queues a reset email when email belongs to a user
// that is not locked. Unknown emails and locked accounts are not reported
// to the caller.
func (s *passwordResetService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.PasswordResetRequest{Email: email}); err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*passwordResetService.RequestPasswordReset").Msg("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	if user.AccountStatus == models.AccountStatusLocked {
		log.Warn().
			Str("func", "*passwordResetService.RequestPasswordReset").
			Str("user_id", user.ID.String()).
			Msg("password reset attempted for locked account")
		return nil
	}

	token, err := s.tokens.CreatePasswordResetToken(ctx, user)
	if err != nil {
		return err
	}

	if err = s.emails.SendPasswordResetEmail(ctx, user, token.String()); err != nil {
		return fmt.Errorf("error queueing password reset email: %w", err)
	}

	return nil
}

// ResetPassword stores the new password of the user named by token.
// A token stops working once the password it was issued for changes.
//
// Returns ErrResetTokenExpired, ErrResetTokenInvalid or ErrResetTokenUsed
// for unusable tokens.
func (s *passwordResetService) ResetPassword(ctx context.Context, rawToken string, req models.PasswordResetConfirmRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	token, err := s.tokens.ParseToken(ctx, rawToken, models.TokenTypePasswordReset)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return ErrResetTokenExpired
		}
		return ErrResetTokenInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return ErrResetTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("error loading user: %w", err)
	}

	if !utils.FingerprintsEqual(token.Fingerprint, utils.PasswordFingerprint(user.PasswordHash, s.fingerprintKey)) {
		log.Info().Str("func", "*passwordResetService.ResetPassword").Str("user_id", user.ID.String()).Msg("reset token reused")
		return ErrResetTokenUsed
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err = s.userRepository.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("func", "*passwordResetService.ResetPassword").Str("user_id", user.ID.String()).Msg("password reset")

	return nil
}
