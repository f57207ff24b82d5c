package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/models"
)

//go:embed templates/*
var templatesFS embed.FS

const (
	subjectPasswordReset  = "Password Reset Request"
	subjectAccountLockout = "Account Security Alert - Temporary Lockout Notification"

	// emailJobOwner owns jobs that no user polls for.
	emailJobOwner = "system"

	emailTimeLayout = "2006-01-02 15:04 UTC"
)

type emailService struct {
	queue queue.Queue

	html *htmltemplate.Template
	text *texttemplate.Template

	siteName        string
	frontendURL     string
	supportEmail    string
	resetTTL        time.Duration
	lockoutDuration time.Duration

	logger *logger.Logger
}

// NewEmailService parses the embedded templates and returns an EmailService
// that queues rendered messages on q.
func NewEmailService(q queue.Queue, cfg config.StructuredConfig, logger *logger.Logger) (EmailService, error) {
	html, err := htmltemplate.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing html email templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templatesFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("error parsing text email templates: %w", err)
	}

	return &emailService{
		queue:           q,
		html:            html,
		text:            text,
		siteName:        cfg.App.SiteName,
		frontendURL:     strings.TrimRight(cfg.App.FrontendURL, "/"),
		supportEmail:    cfg.App.SupportEmail,
		resetTTL:        cfg.Auth.PasswordResetTTL,
		lockoutDuration: cfg.Auth.LockoutDuration,
		logger:          logger,
	}, nil
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, user models.User, token string) error {
	data := map[string]any{
		"SiteName":      s.siteName,
		"FullName":      user.FullName(),
		"ResetURL":      s.frontendURL + "/reset-password/" + token,
		"ExpiryMinutes": int(s.resetTTL.Minutes()),
		"SupportEmail":  s.supportEmail,
	}

	return s.send(ctx, "password_reset", user.Email, subjectPasswordReset, data)
}

func (s *emailService) SendAccountLockoutEmail(ctx context.Context, user models.User, lockedAt time.Time) error {
	data := map[string]any{
		"SiteName":       s.siteName,
		"FullName":       user.FullName(),
		"LockoutMinutes": int(s.lockoutDuration.Minutes()),
		"LockoutTime":    lockedAt.UTC().Format(emailTimeLayout),
		"UnlockTime":     lockedAt.Add(s.lockoutDuration).UTC().Format(emailTimeLayout),
		"SupportEmail":   s.supportEmail,
	}

	return s.send(ctx, "account_lockout", user.Email, subjectAccountLockout, data)
}

func (s *emailService) send(ctx context.Context, template, to, subject string, data map[string]any) error {
	msg, err := s.render(template, to, subject, data)
	if err != nil {
		return err
	}

	job, err := s.queue.Enqueue(ctx, queue.KindSendEmail, emailJobOwner, msg)
	if err != nil {
		return fmt.Errorf("error queueing %s email: %w", template, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*emailService.send").
		Str("template", template).
		Str("job_id", job.ID).
		Msg("email queued")

	return nil
}

func (s *emailService) render(template, to, subject string, data map[string]any) (models.EmailMessage, error) {
	var html, text bytes.Buffer
	if err := s.html.ExecuteTemplate(&html, template+".html", data); err != nil {
		return models.EmailMessage{}, fmt.Errorf("error rendering %s.html: %w", template, err)
	}
	if err := s.text.ExecuteTemplate(&text, template+".txt", data); err != nil {
		return models.EmailMessage{}, fmt.Errorf("error rendering %s.txt: %w", template, err)
	}

	if s.siteName != "" {
		subject = s.siteName + ": " + subject
	}

	return models.EmailMessage{
		To:      []string{to},
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
