package http

import (
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/internal/validators"
)

type Handler struct {
	services *service.Services
	cookies  *cookieManager

	// images reports the size of upload bodies cut off at maxUploadBody.
	images        validators.ImageChecker
	maxUploadBody int64

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        newCookieManager(cfg.Auth, cfg.App),
		images:         validators.NewImageValidator(cfg.Upload),
		maxUploadBody:  uploadBodyLimit(cfg.Upload.MaxFileSize),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// uploadBodyLimit leaves room for the multipart envelope and for files just
// over the limit, so the image check can report their real size.
func uploadBodyLimit(maxFileSize int64) int64 {
	return 2*maxFileSize + 1<<20
}
