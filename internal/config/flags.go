package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// hostPort is a flag.Value accepting "host:port" with a numeric port in
// 1..65535. The host may be empty, ":8080" listens on all interfaces.
type hostPort string

func (h *hostPort) String() string { return string(*h) }

func (h *hostPort) Set(s string) error {
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	*h = hostPort(net.JoinHostPort(host, port))
	return nil
}

// environmentFlag only accepts the known deployment names.
type environmentFlag Environment

func (e *environmentFlag) String() string { return string(*e) }

func (e *environmentFlag) Set(s string) error {
	switch env := Environment(s); env {
	case EnvironmentLocal, EnvironmentStaging, EnvironmentProduction:
		*e = environmentFlag(env)
		return nil
	}
	return fmt.Errorf("unknown environment %q", s)
}

// parseFlags reads the command line. Both binaries share the same flag set;
// flags that do not concern a binary are simply ignored by it.
//
//	-a               HTTP listen address host:port
//	-d               Postgres DSN
//	-r               Redis address host:port
//	-c, -config      JSON config file
//	-env             local, staging or production
//	-log-level       debug, info, warn, error
//	-signing-key     token signing key
//	-frontend-url    base of links placed into emails
//	-request-timeout per request timeout, e.g. 30s
//	-concurrency     number of parallel job workers
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		cfg         StructuredConfig
		httpAddress hostPort
		redisAddr   hostPort
		environment environmentFlag
		timeout     time.Duration
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Postgres DSN")
	fs.Var(&redisAddr, "r", "Redis address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.Var(&environment, "env", "Environment: local, staging or production")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.Auth.SigningKey, "signing-key", "", "Token signing key")
	fs.StringVar(&cfg.App.FrontendURL, "frontend-url", "", "Frontend base URL used in emails")
	fs.DurationVar(&timeout, "request-timeout", 0, "Per request timeout, e.g. 30s")
	fs.IntVar(&cfg.Workers.Concurrency, "concurrency", 0, "Number of parallel job workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = string(httpAddress)
	cfg.Server.RequestTimeout = timeout
	cfg.Storage.Redis.Address = string(redisAddr)
	cfg.App.Environment = Environment(environment)

	return &cfg, nil
}
