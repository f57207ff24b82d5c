package config

import "time"

const (
	defaultMaxFileSize    = 5 * 1024 * 1024
	defaultMaxDimension   = 4096
	defaultMaxImagePixels = 50_000_000
)

// defaultConfig returns the lowest-priority source. LockoutDuration is not
// set here since its default depends on the merged environment.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:  EnvironmentLocal,
			SiteName:     "Finbank",
			FrontendURL:  "http://localhost:5173",
			SupportEmail: "support@finbank.local",
			Version:      "dev",
			LogLevel:     "info",
		},
		Auth: Auth{
			JWTAlgorithm:     "HS256",
			AccessTokenTTL:   30 * time.Minute,
			RefreshTokenTTL:  24 * time.Hour,
			PasswordResetTTL: 15 * time.Minute,
			CookiePath:       "/",
			LoginAttempts:    3,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Redis: Redis{
				Address: "localhost:6379",
			},
		},
		Upload: Upload{
			AllowedMIMETypes: []string{"image/jpeg", "image/png", "image/jpg"},
			AllowedFormats:   []string{"jpeg", "jpg", "png"},
			MaxFileSize:      defaultMaxFileSize,
			MaxDimension:     defaultMaxDimension,
			MaxImagePixels:   defaultMaxImagePixels,
		},
		ImageHost: ImageHost{
			BaseURL: "https://api.cloudinary.com",
			Timeout: 30 * time.Second,
		},
		Mail: Mail{
			SMTPHost: "localhost",
			SMTPPort: 1025,
			From:     "no-reply@finbank.local",
			FromName: "Finbank",
		},
		Workers: Workers{
			Concurrency:    4,
			MaxRetries:     3,
			RetryBaseDelay: time.Second,
			RetryMaxDelay:  60 * time.Second,
			TaskTimeout:    10 * time.Second,
			ResultTTL:      24 * time.Hour,
			PollTimeout:    5 * time.Second,
		},
	}
}

func defaultLockoutDuration(env Environment) time.Duration {
	if env == EnvironmentLocal {
		return 2 * time.Minute
	}
	return 5 * time.Minute
}
