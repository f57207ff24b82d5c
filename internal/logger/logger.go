// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the finbank API server and worker.
//
// Every process builds one root *Logger with NewLogger and hands it down by
// pointer. Request and job scoped loggers are derived with the With* helpers
// and travel in the context; code below the transport layer reads them back
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field names shared by every log line that carries them.
const (
	FieldRole    = "role"
	FieldTraceID = "trace_id"
	FieldUserID  = "user_id"
	FieldJobID   = "job_id"
	FieldJobKind = "kind"
	FieldWorker  = "worker"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function name under "func".
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewConsoleLogger is NewLogger with human readable output on stderr,
// used when the process runs in the local environment.
func NewConsoleLogger(role string) *Logger {
	return newLogger(role, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).With().
			Str(FieldRole, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel changes the global minimum level. Unknown or empty names leave
// the level unchanged and return false.
func SetLevel(level string) bool {
	if level == "" {
		return false
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}
	zerolog.SetGlobalLevel(lvl)
	return true
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with the request trace id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(FieldTraceID, traceID).Logger()}
}

// WithUserID returns a child logger tagged with the authenticated user.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{l.With().Str(FieldUserID, userID).Logger()}
}

// WithJob returns a child logger tagged with the worker number and the job
// being processed.
func (l *Logger) WithJob(worker int, jobID, kind string) *Logger {
	return &Logger{l.With().
		Int(FieldWorker, worker).
		Str(FieldJobID, jobID).
		Str(FieldJobKind, kind).
		Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// When none is attached zerolog falls back to its default logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
