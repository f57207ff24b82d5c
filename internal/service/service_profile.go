package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("error loading profile: %w", err)
	}

	return profile, nil
}

// CreateProfile validates req and stores the user's profile. A user holds
// at most one profile; a second attempt returns ErrProfileAlreadyExists.
func (s *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileCreateRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	_, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		return models.Profile{}, ErrProfileAlreadyExists
	case !errors.Is(err, store.ErrProfileNotFound):
		return models.Profile{}, fmt.Errorf("error checking existing profile: %w", err)
	}

	profile, err := s.profileRepository.CreateProfile(ctx, req.ToProfile(userID))
	if err != nil {
		if errors.Is(err, store.ErrProfileAlreadyExists) {
			return models.Profile{}, ErrProfileAlreadyExists
		}
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*profileService.CreateProfile").Str("user_id", userID.String()).Msg("error creating profile")
		return models.Profile{}, fmt.Errorf("error creating profile: %w", err)
	}

	log.Info().Str("func", "*profileService.CreateProfile").Str("user_id", userID.String()).Msg("profile created")

	return profile, nil
}

// UpdateProfile writes the fields present in req. Photo URLs are set only
// by the upload pipeline and cannot be changed here.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	profile, err := s.profileRepository.UpdateProfile(ctx, userID, req)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		if errors.Is(err, store.ErrPassportNumberRequired) {
			return models.Profile{}, validators.PassportRequiredError()
		}
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.UpdateProfile").Str("user_id", userID.String()).Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("error updating profile: %w", err)
	}

	return profile, nil
}
