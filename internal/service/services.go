package service

import (
	"fmt"

	"github.com/finbank/finbank-api/internal/adapter"
	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
)

// Services groups the services used by the HTTP handlers.
type Services struct {
	TokenService         TokenService
	AuthService          AuthService
	PasswordResetService PasswordResetService
	EmailService         EmailService
	ProfileService       ProfileService
	NextOfKinService     NextOfKinService
	UploadService        UploadService
	AppInfoService       AppInfoService
}

func NewServices(repos *store.Repositories, q queue.Queue, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	requestValidator := validators.NewRequestValidator()
	images := validators.NewImageValidator(cfg.Upload)

	tokens := NewTokenService(cfg.Auth, logger)

	emails, err := NewEmailService(q, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService:         tokens,
		AuthService:          NewAuthService(repos.UserRepository, tokens, emails, requestValidator, cfg.Auth, logger),
		PasswordResetService: NewPasswordResetService(repos.UserRepository, tokens, emails, requestValidator, cfg.Auth.SigningKey, logger),
		EmailService:         emails,
		ProfileService:       NewProfileService(repos.ProfileRepository, requestValidator, logger),
		NextOfKinService:     NewNextOfKinService(repos.NextOfKinRepository, requestValidator, logger),
		UploadService:        NewUploadService(q, images, repos.ProfileRepository, logger),
		AppInfoService:       appInfo,
	}, nil
}

// NewTaskHandlers returns the background job handlers keyed by job kind.
func NewTaskHandlers(host adapter.ImageHost, mailer adapter.Mailer, cfg config.StructuredConfig) map[queue.Kind]TaskHandler {
	return map[queue.Kind]TaskHandler{
		queue.KindUploadProfileImage: NewImageUploadTask(host, validators.NewImageValidator(cfg.Upload), cfg),
		queue.KindSendEmail:          NewSendEmailTask(mailer),
	}
}
