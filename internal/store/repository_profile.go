package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	return r.queryProfile(ctx, "*profileRepository.GetProfileByUserID", getProfileByUserID, userID)
}

// CreateProfile inserts profile. The user_id column is unique, so a second
// profile for the same user yields [ErrProfileAlreadyExists].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.UserID, profile.Title, profile.Gender, profile.MaritalStatus, profile.DateOfBirth,
		profile.CountryOfBirth, profile.PlaceOfBirth, profile.IdentificationType, profile.MeansOfIdentification,
		profile.IDIssuedDate, profile.IDExpiryDate, profile.PassportNumber, profile.PhoneNumber, profile.Nationality,
		profile.Address, profile.City, profile.Country, profile.EmploymentStatus, profile.EmployerName, profile.EmployerAddress,
		profile.EmployerCity, profile.EmployerCountry, profile.AnnualIncome, profile.DateOfEmployment,
	)

	created, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error inserting profile")

		switch {
		case isUniqueViolation(err, ""):
			return models.Profile{}, ErrProfileAlreadyExists
		case isForeignKeyViolation(err):
			return models.Profile{}, ErrUserNotFound
		default:
			return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// UpdateProfile applies a partial update. An update with no fields returns
// the stored profile unchanged.
func (r *profileRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdateRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error building update query")
		return models.Profile{}, err
	}
	if query == "" {
		return r.GetProfileByUserID(ctx, userID)
	}

	return r.queryProfile(ctx, "*profileRepository.UpdateProfile", query, args...)
}

// SetImageURL stores url into the column that belongs to imageType.
func (r *profileRepository) SetImageURL(ctx context.Context, userID uuid.UUID, imageType models.ImageType, url string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetImageURLQuery(userID, imageType, url)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SetImageURL").Msg("error building update query")
		return models.Profile{}, err
	}

	return r.queryProfile(ctx, "*profileRepository.SetImageURL", query, args...)
}

func (r *profileRepository) queryProfile(ctx context.Context, funcName, query string, args ...any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		if isCheckViolation(err, passportNumberRequiredConstraint) {
			return models.Profile{}, ErrPassportNumberRequired
		}
		log.Err(err).Str("func", funcName).Msg("error querying profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}
