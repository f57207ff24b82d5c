// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external services the API depends on.
//
// [ImageHost] uploads profile images to a Cloudinary-compatible API over
// HTTP; [Mailer] delivers transactional email over SMTP. Transport failures
// are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] without knowing the protocol.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ImageHost stores images and their derived versions.
type ImageHost interface {
	// Upload sends the image and waits for the eager transformations.
	Upload(ctx context.Context, img ImageUpload) (UploadedImage, error)
}

// Mailer delivers a single email.
type Mailer interface {
	Send(ctx context.Context, msg Mail) error
}

// ImageUpload describes an upload request.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string

	// PublicID is the asset name inside Folder. With Overwrite set, a
	// repeated upload under the same PublicID replaces the earlier asset.
	PublicID  string
	Folder    string
	Overwrite bool

	// Eager lists transformations generated during the upload,
	// e.g. "c_fill,w_200,h_200".
	Eager          []string
	Tags           []string
	AllowedFormats []string
}

// UploadedImage is the part of the host response the API uses.
type UploadedImage struct {
	PublicID  string         `json:"public_id"`
	SecureURL string         `json:"secure_url"`
	Format    string         `json:"format"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Eager     []EagerVersion `json:"eager"`
}

// EagerVersion is one generated transformation.
type EagerVersion struct {
	Transformation string `json:"transformation"`
	SecureURL      string `json:"secure_url"`
}

// Mail is a rendered email.
type Mail struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}
