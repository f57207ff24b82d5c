package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostPort_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "localhost:8080"},
		{in: "0.0.0.0:80", want: "0.0.0.0:80"},
		{in: ":8080", want: ":8080"},
		{in: "redis:6379", want: "redis:6379"},
		{in: "[::1]:9000", want: "[::1]:9000"},
		{in: "localhost", wantErr: true},
		{in: "localhost:http", wantErr: true},
		{in: "localhost:0", wantErr: true},
		{in: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var h hostPort
			err := h.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, h.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.String())
		})
	}
}

func TestEnvironmentFlag_Set(t *testing.T) {
	var e environmentFlag
	require.NoError(t, e.Set("staging"))
	assert.Equal(t, "staging", e.String())

	assert.Error(t, e.Set("qa"))
	assert.Equal(t, "staging", e.String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags("finbank-server", []string{
		"-a", ":9090",
		"-d", "postgres://localhost/finbank",
		"-r", "localhost:6380",
		"-config", "/tmp/finbank.json",
		"-env", "production",
		"-log-level", "debug",
		"-signing-key", "flag-secret",
		"-frontend-url", "https://finbank.io/",
		"-request-timeout", "45s",
		"-concurrency", "6",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/finbank", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6380", cfg.Storage.Redis.Address)
	assert.Equal(t, "/tmp/finbank.json", cfg.JSONFilePath)
	assert.Equal(t, EnvironmentProduction, cfg.App.Environment)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "flag-secret", cfg.Auth.SigningKey)
	assert.Equal(t, "https://finbank.io/", cfg.App.FrontendURL)
	assert.Equal(t, 6, cfg.Workers.Concurrency)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags("finbank-worker", nil)
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := map[string][]string{
		"bad address":     {"-a", "8080"},
		"bad environment": {"-env", "qa"},
		"bad duration":    {"-request-timeout", "soon"},
		"unknown flag":    {"-verbose"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags("finbank-server", args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
