// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies and uploaded images before any
// business logic runs.
//
// Core concepts:
//   - Validator: validates a request body. Failures are reported as a
//     *RequestValidationError listing every broken rule.
//   - ImageChecker: validates raw image bytes. Failures are reported as an
//     *ImageValidationError with a client-facing message.
//
// Both are injected into services, keeping transport and storage free of
// validation rules.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

// ImageChecker inspects uploaded image bytes.
type ImageChecker interface {
	// CheckImage runs the synchronous checks done before an upload is queued.
	CheckImage(data []byte) (ImageInfo, error)
	// CheckContentType rejects content types outside the allowed list.
	CheckContentType(contentType string) error
	// CheckSize rejects payloads above the size limit.
	CheckSize(size int) error
	// ResolveContentType returns declared unless it is empty or generic,
	// in which case the type is sniffed from data.
	ResolveContentType(declared string, data []byte) string
}
