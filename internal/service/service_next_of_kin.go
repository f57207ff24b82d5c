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

type nextOfKinService struct {
	nextOfKinRepository store.NextOfKinRepository
	validator           validators.Validator

	logger *logger.Logger
}

func NewNextOfKinService(nextOfKinRepository store.NextOfKinRepository, validator validators.Validator, logger *logger.Logger) NextOfKinService {
	return &nextOfKinService{
		nextOfKinRepository: nextOfKinRepository,
		validator:           validator,
		logger:              logger,
	}
}

// CreateNextOfKin adds a next of kin for userID.
//
// The checks run while the user's records are locked:
//   - at most models.MaxNextOfKin records (ErrMaxNextOfKinReached);
//   - at most one primary (ErrPrimaryNextOfKinExists);
//   - the first record is always primary.
func (s *nextOfKinService) CreateNextOfKin(ctx context.Context, userID uuid.UUID, req models.NextOfKinCreateRequest) (models.NextOfKin, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.NextOfKin{}, err
	}

	kin, err := s.nextOfKinRepository.CreateNextOfKin(ctx, userID, func(existing []models.NextOfKin) (models.NextOfKin, error) {
		return prepareNextOfKin(userID, req, existing)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMaxNextOfKinReached), errors.Is(err, ErrPrimaryNextOfKinExists):
			return models.NextOfKin{}, err
		case errors.Is(err, store.ErrPrimaryNextOfKinExists):
			return models.NextOfKin{}, ErrPrimaryNextOfKinExists
		case errors.Is(err, store.ErrUserNotFound):
			return models.NextOfKin{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*nextOfKinService.CreateNextOfKin").Str("user_id", userID.String()).Msg("error creating next of kin")
		return models.NextOfKin{}, fmt.Errorf("error creating next of kin: %w", err)
	}

	log.Info().
		Str("func", "*nextOfKinService.CreateNextOfKin").
		Str("user_id", userID.String()).
		Bool("is_primary", kin.IsPrimary).
		Msg("next of kin created")

	return kin, nil
}

func prepareNextOfKin(userID uuid.UUID, req models.NextOfKinCreateRequest, existing []models.NextOfKin) (models.NextOfKin, error) {
	if len(existing) >= models.MaxNextOfKin {
		return models.NextOfKin{}, ErrMaxNextOfKinReached
	}

	kin := req.ToNextOfKin(userID)
	if len(existing) == 0 {
		kin.IsPrimary = true
		return kin, nil
	}

	if kin.IsPrimary {
		for _, e := range existing {
			if e.IsPrimary {
				return models.NextOfKin{}, ErrPrimaryNextOfKinExists
			}
		}
	}

	return kin, nil
}

// ListNextOfKin returns the user's records, primary first.
func (s *nextOfKinService) ListNextOfKin(ctx context.Context, userID uuid.UUID) ([]models.NextOfKin, error) {
	kin, err := s.nextOfKinRepository.ListNextOfKin(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing next of kin: %w", err)
	}
	if kin == nil {
		kin = []models.NextOfKin{}
	}

	return kin, nil
}
