package service

import (
	"context"
	"fmt"

	"github.com/finbank/finbank-api/internal/adapter"
	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
)

var (
	eagerTransformations = []string{"c_limit,w_800,h_800", "c_fill,w_200,h_200"}

	// thumbnailIndex selects the thumbnail among eagerTransformations.
	thumbnailIndex = 1
)

type imageUploadTask struct {
	host   adapter.ImageHost
	images validators.ImageChecker

	cloudName      string
	allowedFormats []string
}

// NewImageUploadTask returns the handler of queue.KindUploadProfileImage jobs.
func NewImageUploadTask(host adapter.ImageHost, images validators.ImageChecker, cfg config.StructuredConfig) TaskHandler {
	return &imageUploadTask{
		host:           host,
		images:         images,
		cloudName:      cfg.ImageHost.CloudName,
		allowedFormats: cfg.Upload.AllowedFormats,
	}
}

// Handle uploads the image of job under the public id
// "<image_type>_<job id>". Retried attempts overwrite the same asset.
// Validation failures are permanent; everything else may be retried.
func (t *imageUploadTask) Handle(ctx context.Context, job queue.Job) (any, error) {
	log := logger.FromContext(ctx)

	var payload models.ImageUploadPayload
	if err := job.DecodePayload(&payload); err != nil {
		return nil, queue.Permanent(err)
	}

	if err := t.images.CheckContentType(payload.ContentType); err != nil {
		return nil, queue.Permanent(err)
	}
	if err := t.images.CheckSize(len(payload.FileData)); err != nil {
		return nil, queue.Permanent(err)
	}

	userID := payload.UserID.String()
	publicID := fmt.Sprintf("%s_%s", payload.ImageType, job.ID)

	log.Info().
		Str("func", "*imageUploadTask.Handle").
		Str("user_id", userID).
		Str("image_type", string(payload.ImageType)).
		Str("public_id", publicID).
		Msg("uploading image")

	uploaded, err := t.host.Upload(ctx, adapter.ImageUpload{
		Data:           payload.FileData,
		ContentType:    payload.ContentType,
		Filename:       publicID,
		PublicID:       publicID,
		Folder:         fmt.Sprintf("%s/profiles/%s", t.cloudName, userID),
		Overwrite:      true,
		Eager:          eagerTransformations,
		Tags:           []string{"user_profile_" + userID, string(payload.ImageType)},
		AllowedFormats: t.allowedFormats,
	})
	if err != nil {
		return nil, err
	}

	if uploaded.SecureURL == "" {
		return nil, ErrSecureURLNotReceived
	}

	result := models.ImageUploadResult{
		URL:       uploaded.SecureURL,
		ImageType: payload.ImageType,
		PublicID:  uploaded.PublicID,
	}
	if len(uploaded.Eager) > thumbnailIndex {
		result.ThumbnailURL = uploaded.Eager[thumbnailIndex].SecureURL
	}
	if result.PublicID == "" {
		result.PublicID = publicID
	}

	log.Info().
		Str("func", "*imageUploadTask.Handle").
		Str("user_id", userID).
		Str("url", result.URL).
		Str("thumbnail_url", result.ThumbnailURL).
		Msg("image uploaded")

	return result, nil
}
