package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
)

// authService resolves users from tokens, enforces account status and
// implements password login with lockout after repeated failures.
type authService struct {
	userRepository store.UserRepository
	tokens         TokenService
	emails         EmailService
	validator      validators.Validator

	// loginAttempts is the number of consecutive failures that locks an account.
	loginAttempts int

	// lockoutDuration is how long a locked account stays locked, counted
	// from the last failed login.
	lockoutDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. emails receives lockout
// notifications.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, emails EmailService, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokens:          tokens,
		emails:          emails,
		validator:       validator,
		loginAttempts:   cfg.LoginAttempts,
		lockoutDuration: cfg.LockoutDuration,
		now:             time.Now,
		logger:          logger,
	}
}

// Authenticate verifies an access token and returns its active user.
//
// Returns one of the token errors from ParseToken, ErrUserNotFound, an
// account status error from ValidateUserStatus, or a wrapped storage error.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	token, err := a.tokens.ParseToken(ctx, accessToken, models.TokenTypeAccess)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userFromToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	return a.ValidateUserStatus(ctx, user)
}

// Refresh verifies a refresh token and mints a new access token for its user.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.tokens.ParseToken(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userFromToken(ctx, token)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if user, err = a.ValidateUserStatus(ctx, user); err != nil {
		return models.User{}, models.Token{}, err
	}

	access, err := a.tokens.CreateToken(ctx, user.ID, models.TokenTypeAccess)
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Str("user_id", user.ID.String()).Msg("error creating access token")
		return models.User{}, models.Token{}, err
	}

	return user, access, nil
}

// Login checks the email/password pair.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials. A
// wrong password is recorded; the failure that reaches the configured limit
// locks the account, queues a lockout email and yields ErrAccountLocked.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Session{}, err
	}

	user, err := a.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*authService.Login").Msg("login attempt for unknown email")
			return models.User{}, models.Session{}, ErrInvalidCredentials
		}
		return models.User{}, models.Session{}, fmt.Errorf("error looking up user: %w", err)
	}

	if user, err = a.ValidateUserStatus(ctx, user); err != nil {
		return models.User{}, models.Session{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return models.User{}, models.Session{}, a.recordFailedLogin(ctx, user)
	}

	if user.FailedLoginAttempts > 0 {
		if err = a.userRepository.ResetLoginAttempts(ctx, user.ID); err != nil {
			return models.User{}, models.Session{}, fmt.Errorf("error resetting login attempts: %w", err)
		}
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
	}

	access, err := a.tokens.CreateToken(ctx, user.ID, models.TokenTypeAccess)
	if err != nil {
		return models.User{}, models.Session{}, err
	}
	refresh, err := a.tokens.CreateToken(ctx, user.ID, models.TokenTypeRefresh)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Str("func", "*authService.Login").Str("user_id", user.ID.String()).Msg("user logged in")

	return user, models.Session{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authService) recordFailedLogin(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	at := a.now()
	updated, err := a.userRepository.RecordFailedLogin(ctx, user.ID, a.loginAttempts, at)
	if err != nil {
		return fmt.Errorf("error recording failed login: %w", err)
	}

	if updated.AccountStatus != models.AccountStatusLocked {
		log.Info().
			Str("func", "*authService.recordFailedLogin").
			Str("user_id", user.ID.String()).
			Int("attempts", updated.FailedLoginAttempts).
			Msg("wrong password")
		return ErrInvalidCredentials
	}

	log.Warn().
		Str("func", "*authService.recordFailedLogin").
		Str("user_id", user.ID.String()).
		Msg("account locked after repeated failed logins")

	if err = a.emails.SendAccountLockoutEmail(ctx, updated, at); err != nil {
		log.Err(err).Str("func", "*authService.recordFailedLogin").Msg("error queueing lockout email")
	}

	return ErrAccountLocked
}

func (a *authService) ValidateUserStatus(ctx context.Context, user models.User) (models.User, error) {
	if user.AccountStatus == models.AccountStatusLocked {
		if !a.lockoutElapsed(user) {
			return models.User{}, ErrAccountLocked
		}

		if err := a.userRepository.ResetLoginAttempts(ctx, user.ID); err != nil {
			return models.User{}, fmt.Errorf("error unlocking account: %w", err)
		}
		logger.FromContext(ctx).Info().
			Str("func", "*authService.ValidateUserStatus").
			Str("user_id", user.ID.String()).
			Msg("lockout elapsed, account unlocked")

		user.AccountStatus = models.AccountStatusActive
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
	}

	switch {
	case user.AccountStatus == models.AccountStatusInactive, !user.IsActive:
		return models.User{}, ErrAccountInactive
	case user.AccountStatus == models.AccountStatusPending:
		return models.User{}, ErrAccountPending
	}

	return user, nil
}

// lockoutElapsed reports whether a locked account may be unlocked. Accounts
// locked without a recorded failure stay locked.
func (a *authService) lockoutElapsed(user models.User) bool {
	if user.LastFailedLogin == nil {
		return false
	}
	return !a.now().Before(user.LastFailedLogin.Add(a.lockoutDuration))
}

func (a *authService) userFromToken(ctx context.Context, token models.Token) (models.User, error) {
	userID, err := token.GetUserID()
	if err != nil {
		return models.User{}, ErrTokenInvalid
	}

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.userFromToken").Msg("error loading user")
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}
