// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidRequestBody wraps every failure to decode a JSON body,
	// including an empty one.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored a user in the request context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrMissingImageFile is returned when an upload request carries no
	// "file" multipart field.
	ErrMissingImageFile = errors.New("missing image file")
)
