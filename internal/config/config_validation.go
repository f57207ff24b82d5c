// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/finbank/finbank-api/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvironmentLocal, EnvironmentStaging, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}
	if cfg.App.FrontendURL == "" {
		return fmt.Errorf("%w: frontend url is empty", ErrInvalidAppConfigs)
	}

	if cfg.Auth.SigningKey == "" {
		return fmt.Errorf("%w: signing key is empty", ErrInvalidAuthConfigs)
	}
	if !utils.IsSupportedAlgorithm(cfg.Auth.JWTAlgorithm) {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidAuthConfigs, cfg.Auth.JWTAlgorithm)
	}
	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 || cfg.Auth.PasswordResetTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.LoginAttempts <= 0 || cfg.Auth.LockoutDuration <= 0 {
		return fmt.Errorf("%w: lockout settings must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is empty", ErrInvalidStorageConfigs)
	}

	if len(cfg.Upload.AllowedMIMETypes) == 0 || len(cfg.Upload.AllowedFormats) == 0 {
		return fmt.Errorf("%w: allowed types are empty", ErrInvalidUploadConfigs)
	}
	if cfg.Upload.MaxFileSize <= 0 || cfg.Upload.MaxDimension <= 0 || cfg.Upload.MaxImagePixels <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidUploadConfigs)
	}

	w := cfg.Workers
	if w.Concurrency <= 0 || w.MaxRetries < 0 || w.TaskTimeout <= 0 || w.PollTimeout <= 0 {
		return fmt.Errorf("%w: concurrency, timeouts must be positive", ErrInvalidWorkerConfigs)
	}
	if w.RetryBaseDelay <= 0 || w.RetryMaxDelay < w.RetryBaseDelay {
		return fmt.Errorf("%w: retry delays out of order", ErrInvalidWorkerConfigs)
	}

	return nil
}
