package service

import (
	"context"
	"testing"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/mock"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(ctrl *gomock.Controller) (ProfileService, *mock.MockProfileRepository, *mock.MockValidator) {
	profiles := mock.NewMockProfileRepository(ctrl)
	v := mock.NewMockValidator(ctrl)
	return NewProfileService(profiles, v, logger.Nop()), profiles, v
}

// ── CreateProfile ───────────────────────────────────────────────────────────

func TestCreateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()
	req := models.ProfileCreateRequest{City: "Nairobi", Country: "Kenya"}

	v.EXPECT().Validate(ctx, req).Return(nil)
	profiles.EXPECT().GetProfileByUserID(ctx, userID).Return(models.Profile{}, store.ErrProfileNotFound)
	profiles.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, "Nairobi", p.City)
			p.ID = uuid.New()
			return p, nil
		})

	got, err := svc.CreateProfile(ctx, userID, req)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	v.EXPECT().Validate(ctx, gomock.Any()).Return(nil)
	profiles.EXPECT().GetProfileByUserID(ctx, userID).Return(models.Profile{UserID: userID}, nil)

	_, err := svc.CreateProfile(ctx, userID, models.ProfileCreateRequest{})
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

func TestCreateProfile_ConcurrentInsertLosesToUniqueIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	v.EXPECT().Validate(ctx, gomock.Any()).Return(nil)
	profiles.EXPECT().GetProfileByUserID(ctx, userID).Return(models.Profile{}, store.ErrProfileNotFound)
	profiles.EXPECT().CreateProfile(ctx, gomock.Any()).Return(models.Profile{}, store.ErrProfileAlreadyExists)

	_, err := svc.CreateProfile(ctx, userID, models.ProfileCreateRequest{})
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

func TestCreateProfile_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, v := newTestProfileService(ctrl)
	ctx := context.Background()

	verr := &validators.RequestValidationError{Details: []validators.FieldError{{Field: "phone_number", Message: "invalid", Type: "e164"}}}
	v.EXPECT().Validate(ctx, gomock.Any()).Return(verr)

	_, err := svc.CreateProfile(ctx, uuid.New(), models.ProfileCreateRequest{})

	var target *validators.RequestValidationError
	assert.ErrorAs(t, err, &target)
}

// ── UpdateProfile / GetProfile ──────────────────────────────────────────────

func TestUpdateProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()
	city := "Mombasa"
	req := models.ProfileUpdateRequest{City: &city}

	v.EXPECT().Validate(ctx, req).Return(nil)
	profiles.EXPECT().UpdateProfile(ctx, userID, req).Return(models.Profile{}, store.ErrProfileNotFound)

	_, err := svc.UpdateProfile(ctx, userID, req)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()
	city := "Mombasa"
	req := models.ProfileUpdateRequest{City: &city}

	v.EXPECT().Validate(ctx, req).Return(nil)
	profiles.EXPECT().UpdateProfile(ctx, userID, req).Return(models.Profile{UserID: userID, City: city}, nil)

	got, err := svc.UpdateProfile(ctx, userID, req)

	require.NoError(t, err)
	assert.Equal(t, "Mombasa", got.City)
}

func TestUpdateProfile_ClearingPassportOfPassportHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, v := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()
	req := models.ProfileUpdateRequest{PassportNumber: models.Null[string]()}

	v.EXPECT().Validate(ctx, req).Return(nil)
	profiles.EXPECT().UpdateProfile(ctx, userID, req).Return(models.Profile{}, store.ErrPassportNumberRequired)

	_, err := svc.UpdateProfile(ctx, userID, req)

	var rve *validators.RequestValidationError
	require.ErrorAs(t, err, &rve)
	require.Len(t, rve.Details, 1)
	assert.Equal(t, "passport_number", rve.Details[0].Field)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, profiles, _ := newTestProfileService(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	profiles.EXPECT().GetProfileByUserID(ctx, userID).Return(models.Profile{}, store.ErrProfileNotFound)

	_, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
