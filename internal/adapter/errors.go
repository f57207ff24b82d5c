package adapter

import "errors"

var (
	ErrImageHostConfig    = errors.New("image host is not configured")
	ErrImageHostRequest   = errors.New("image host request failed")
	ErrImageHostRejected  = errors.New("image host rejected the upload")
	ErrImageHostAuth      = errors.New("image host rejected credentials")
	ErrImageHostNotFound  = errors.New("image host endpoint not found")
	ErrImageHostRateLimit = errors.New("image host rate limit exceeded")
	ErrImageHostServer    = errors.New("image host server error")
	ErrImageHostResponse  = errors.New("unexpected image host response")

	ErrMailMissingRecipient = errors.New("mail has no recipient")
	ErrMailSend             = errors.New("error sending mail")
)
