package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from
// a JSON file. Durations may be given as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Environment  string `json:"environment"`
		SiteName     string `json:"site_name"`
		FrontendURL  string `json:"frontend_url"`
		SupportEmail string `json:"support_email"`
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		SigningKey       string   `json:"signing_key"`
		JWTAlgorithm     string   `json:"jwt_algorithm"`
		AccessTokenTTL   Duration `json:"access_token_ttl"`
		RefreshTokenTTL  Duration `json:"refresh_token_ttl"`
		PasswordResetTTL Duration `json:"password_reset_ttl"`
		CookiePath       string   `json:"cookie_path"`
		LoginAttempts    int      `json:"login_attempts"`
		LockoutDuration  Duration `json:"lockout_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Upload struct {
		AllowedMIMETypes []string `json:"allowed_mime_types"`
		AllowedFormats   []string `json:"allowed_formats"`
		MaxFileSize      int64    `json:"max_file_size"`
		MaxDimension     int      `json:"max_dimension"`
		MaxImagePixels   int      `json:"max_image_pixels"`
	} `json:"upload,omitempty"`

	ImageHost struct {
		CloudName string   `json:"cloud_name"`
		APIKey    string   `json:"api_key"`
		APISecret string   `json:"api_secret"`
		BaseURL   string   `json:"base_url"`
		Timeout   Duration `json:"timeout"`
	} `json:"image_host,omitempty"`

	Mail struct {
		SMTPHost string `json:"smtp_host"`
		SMTPPort int    `json:"smtp_port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
		FromName string `json:"from_name"`
	} `json:"mail,omitempty"`

	Workers struct {
		Concurrency    int      `json:"concurrency"`
		MaxRetries     int      `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		RetryMaxDelay  Duration `json:"retry_max_delay"`
		TaskTimeout    Duration `json:"task_timeout"`
		ResultTTL      Duration `json:"result_ttl"`
		PollTimeout    Duration `json:"poll_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment:  Environment(j.App.Environment),
			SiteName:     j.App.SiteName,
			FrontendURL:  j.App.FrontendURL,
			SupportEmail: j.App.SupportEmail,
			Version:      j.App.Version,
			LogLevel:     j.App.LogLevel,
		},
		Auth: Auth{
			SigningKey:       j.Auth.SigningKey,
			JWTAlgorithm:     j.Auth.JWTAlgorithm,
			AccessTokenTTL:   time.Duration(j.Auth.AccessTokenTTL),
			RefreshTokenTTL:  time.Duration(j.Auth.RefreshTokenTTL),
			PasswordResetTTL: time.Duration(j.Auth.PasswordResetTTL),
			CookiePath:       j.Auth.CookiePath,
			LoginAttempts:    j.Auth.LoginAttempts,
			LockoutDuration:  time.Duration(j.Auth.LockoutDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Upload: Upload{
			AllowedMIMETypes: j.Upload.AllowedMIMETypes,
			AllowedFormats:   j.Upload.AllowedFormats,
			MaxFileSize:      j.Upload.MaxFileSize,
			MaxDimension:     j.Upload.MaxDimension,
			MaxImagePixels:   j.Upload.MaxImagePixels,
		},
		ImageHost: ImageHost{
			CloudName: j.ImageHost.CloudName,
			APIKey:    j.ImageHost.APIKey,
			APISecret: j.ImageHost.APISecret,
			BaseURL:   j.ImageHost.BaseURL,
			Timeout:   time.Duration(j.ImageHost.Timeout),
		},
		Mail: Mail{
			SMTPHost: j.Mail.SMTPHost,
			SMTPPort: j.Mail.SMTPPort,
			Username: j.Mail.Username,
			Password: j.Mail.Password,
			From:     j.Mail.From,
			FromName: j.Mail.FromName,
		},
		Workers: Workers{
			Concurrency:    j.Workers.Concurrency,
			MaxRetries:     j.Workers.MaxRetries,
			RetryBaseDelay: time.Duration(j.Workers.RetryBaseDelay),
			RetryMaxDelay:  time.Duration(j.Workers.RetryMaxDelay),
			TaskTimeout:    time.Duration(j.Workers.TaskTimeout),
			ResultTTL:      time.Duration(j.Workers.ResultTTL),
			PollTimeout:    time.Duration(j.Workers.PollTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
