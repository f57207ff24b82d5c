package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

const msgUnknownTaskError = "Unknown error occurred"

type uploadService struct {
	queue             queue.Queue
	images            validators.ImageChecker
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

func NewUploadService(q queue.Queue, images validators.ImageChecker, profileRepository store.ProfileRepository, logger *logger.Logger) UploadService {
	return &uploadService{
		queue:             q,
		images:            images,
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// ScheduleImageUpload checks the image synchronously and, if it passes,
// enqueues an upload job owned by userID. Validation failures are returned
// as *validators.ImageValidationError and nothing is enqueued.
func (s *uploadService) ScheduleImageUpload(ctx context.Context, userID uuid.UUID, imageType string, file models.ImageFile) (queue.Job, error) {
	log := logger.FromContext(ctx)

	it := models.ImageType(imageType)
	if !it.IsValid() {
		return queue.Job{}, ErrInvalidImageType
	}

	info, err := s.images.CheckImage(file.Data)
	if err != nil {
		log.Info().Err(err).Str("func", "*uploadService.ScheduleImageUpload").Str("image_type", imageType).Msg("image rejected")
		return queue.Job{}, err
	}

	payload := models.ImageUploadPayload{
		FileData:    file.Data,
		ImageType:   it,
		ContentType: s.images.ResolveContentType(file.ContentType, file.Data),
		UserID:      userID,
	}

	job, err := s.queue.Enqueue(ctx, queue.KindUploadProfileImage, userID.String(), payload)
	if err != nil {
		log.Err(err).Str("func", "*uploadService.ScheduleImageUpload").Msg("error enqueueing upload")
		return queue.Job{}, fmt.Errorf("error scheduling image upload: %w", err)
	}

	log.Info().
		Str("func", "*uploadService.ScheduleImageUpload").
		Str("task_id", job.ID).
		Str("image_type", imageType).
		Str("format", info.Format).
		Int("size", len(file.Data)).
		Msg("image upload scheduled")

	return job, nil
}

// GetUploadStatus reports the state of an upload job. On success the image
// URL is persisted onto the profile before it is returned, so polling again
// is harmless.
func (s *uploadService) GetUploadStatus(ctx context.Context, userID uuid.UUID, taskID string) (models.UploadStatus, error) {
	log := logger.FromContext(ctx)

	job, err := s.queue.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			return models.UploadStatus{}, ErrUploadTaskNotFound
		}
		return models.UploadStatus{}, fmt.Errorf("error loading upload task: %w", err)
	}

	if job.Kind != queue.KindUploadProfileImage || job.Owner != userID.String() {
		log.Warn().Str("func", "*uploadService.GetUploadStatus").Str("task_id", taskID).Msg("upload task of another user requested")
		return models.UploadStatus{}, ErrUploadTaskNotFound
	}

	switch job.Status {
	case queue.StatusSuccess:
		return s.completeUpload(ctx, userID, job)
	case queue.StatusFailure:
		reason := job.Error
		if reason == "" {
			reason = msgUnknownTaskError
		}
		return models.UploadStatus{Status: models.UploadStateFailed, Error: reason}, nil
	default:
		return models.UploadStatus{Status: models.UploadStatePending, TaskID: job.ID}, nil
	}
}

func (s *uploadService) completeUpload(ctx context.Context, userID uuid.UUID, job queue.Job) (models.UploadStatus, error) {
	var result models.ImageUploadResult
	if err := job.DecodeResult(&result); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*uploadService.completeUpload").Str("task_id", job.ID).Msg("malformed upload result")
		return models.UploadStatus{}, fmt.Errorf("%w: %w", ErrInvalidTaskResult, err)
	}

	if result.URL == "" || result.ImageType == "" {
		return models.UploadStatus{}, ErrMissingTaskResultFields
	}
	if !result.ImageType.IsValid() {
		return models.UploadStatus{}, ErrInvalidImageType
	}

	if _, err := s.profileRepository.SetImageURL(ctx, userID, result.ImageType, result.URL); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.UploadStatus{}, ErrProfileNotFound
		}
		return models.UploadStatus{}, fmt.Errorf("error saving image url: %w", err)
	}

	status := models.UploadStatus{
		Status:    models.UploadStateCompleted,
		ImageURL:  result.URL,
		ImageType: result.ImageType,
	}
	if result.ThumbnailURL != "" {
		status.ThumbnailURL = &result.ThumbnailURL
	}

	return status, nil
}
